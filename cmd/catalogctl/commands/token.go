package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	pkgjwt "github.com/jhoicas/configurador-api/pkg/jwt"
)

func tokenCmd() *cobra.Command {
	var (
		userID  string
		role    string
		minutes int
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT firmado con JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.JWT.Secret == "" {
				return errors.New("JWT_SECRET no está configurado")
			}
			if userID == "" {
				return errors.New("--user es obligatorio")
			}
			if minutes <= 0 {
				minutes = cfg.JWT.Expiration
			}
			token, err := pkgjwt.Generate(cfg.JWT.Secret, userID, role, cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "ID del usuario (claim sub)")
	cmd.Flags().StringVar(&role, "role", "admin", "rol del token")
	cmd.Flags().IntVar(&minutes, "exp", 0, "minutos de validez (por defecto JWT_EXPIRATION_MINUTES)")
	return cmd
}
