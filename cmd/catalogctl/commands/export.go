package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jhoicas/configurador-api/internal/application/usecase"
	"github.com/jhoicas/configurador-api/internal/bootstrap"
	"github.com/jhoicas/configurador-api/internal/domain/catalog"
	"github.com/jhoicas/configurador-api/internal/infrastructure/csvexport"
)

func exportCmd() *cobra.Command {
	var (
		typeID   string
		format   string
		encoding string
		outPath  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Vuelca el catálogo en CSV o JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "csv" && format != "json" {
				return fmt.Errorf("formato no soportado %q (csv|json)", format)
			}
			if encoding == "" {
				encoding = cfg.Export.Encoding
			}
			csvWriter, err := csvexport.NewWriter(encoding)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			specs := catalog.Default()
			catalogUC, closeStore, err := bootstrap.CatalogUseCase(ctx, cfg, specs)
			if err != nil {
				return err
			}
			defer closeStore()

			out, err := usecase.NewExportUseCase(specs, catalogUC).Rows(ctx, typeID)
			if err != nil {
				return err
			}

			var dst io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				dst = f
			}

			if format == "json" {
				enc := json.NewEncoder(dst)
				enc.SetIndent("", "  ")
				err = enc.Encode(out)
			} else {
				err = csvWriter.Write(dst, out.Rows)
			}
			if err != nil {
				return err
			}
			log.Info().Str("type_id", typeID).Str("format", format).Int("rows", len(out.Rows)).Msg("catálogo exportado")
			return nil
		},
	}
	cmd.Flags().StringVar(&typeID, "type", "", "restringir a un tipo de producto")
	cmd.Flags().StringVar(&format, "format", "csv", "csv | json")
	cmd.Flags().StringVar(&encoding, "encoding", "", "utf-8 | windows-1252 (por defecto EXPORT_ENCODING)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "archivo de salida (por defecto stdout)")
	return cmd
}
