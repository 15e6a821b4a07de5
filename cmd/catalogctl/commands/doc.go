// Package commands define la CLI catalogctl de operación del configurador.
//
// Comandos
//
//   - export   Vuelca el catálogo (predefinidos y personalizados) en CSV o JSON
//   - token    Emite un JWT para las rutas de administración
//
// La configuración se lee igual que en la API (variables de entorno y .env).
package commands
