package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/antorcha-inventario/internal/application/transfer"
	"github.com/jhoicas/antorcha-inventario/internal/bootstrap"
	"github.com/jhoicas/antorcha-inventario/pkg/config"
	"github.com/jhoicas/antorcha-inventario/pkg/logger"
)

const dateLayout = "2006-01-02"

// openServices carga la configuración y arma los servicios; los logs van a stderr.
func openServices(ctx context.Context) (*bootstrap.Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name, Out: os.Stderr})
	return bootstrap.New(ctx, cfg, log)
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "antorchactl",
		Short:         "Operación del inventario Antorcha de Plata",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.AddCommand(newImportCmd(), newExportCmd(), newSummaryCmd(), newStatusCmd())
	return root
}

func newImportCmd() *cobra.Command {
	var charset string
	cmd := &cobra.Command{
		Use:   "import [archivo]",
		Short: "Importa productos desde un archivo json, xlsx, csv o xml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			res, err := svc.Transfer.Import(cmd.Context(), filepath.Base(args[0]), f, charset)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d productos importados (%d leídos, %d omitidos)\n", res.Imported, res.Read, res.Skipped)
			for _, e := range res.Errors {
				fmt.Fprintln(cmd.OutOrStdout(), "  -", e)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&charset, "charset", "utf-8", "Juego de caracteres del CSV (utf-8, latin1, windows-1252)")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		format string
		outDir string
		stdout bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta el catálogo completo (copia de seguridad)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			var buf bytes.Buffer
			name, err := svc.Transfer.Export(cmd.Context(), format, &buf)
			if err != nil {
				return err
			}
			if stdout {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			path := filepath.Join(outDir, name)
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", transfer.FormatJSON, "Formato de salida (json, xml)")
	cmd.Flags().StringVar(&outDir, "out", ".", "Directorio destino")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Escribir en la salida estándar en lugar de un archivo")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	var (
		date   string
		format string
		send   bool
		to     string
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Resumen del día (texto, json, pdf o mailto) o envío por SMTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day := time.Now()
			if date != "" {
				d, err := time.ParseInLocation(dateLayout, date, time.Local)
				if err != nil {
					return fmt.Errorf("--date debe tener formato YYYY-MM-DD")
				}
				day = d
			}
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			if send {
				if err := svc.Summary.Send(ctx, day, to); err != nil {
					return err
				}
				fmt.Fprintln(w, "resumen enviado")
				return nil
			}
			switch format {
			case "text":
				txt, err := svc.Summary.Text(ctx, day)
				if err != nil {
					return err
				}
				_, err = io.WriteString(w, txt)
				return err
			case "json":
				s, err := svc.Summary.Build(ctx, day)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			case "mailto":
				link, err := svc.Summary.Mailto(ctx, day, to)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, link)
				return err
			case "pdf":
				doc, err := svc.Summary.PDF(ctx, day)
				if err != nil {
					return err
				}
				path := "resumen-" + day.Format(dateLayout) + ".pdf"
				if err := os.WriteFile(path, doc, 0o644); err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, path)
				return err
			}
			return fmt.Errorf("--format debe ser text, json, mailto o pdf")
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Día YYYY-MM-DD (hoy por defecto)")
	cmd.Flags().StringVar(&format, "format", "text", "Salida: text, json, mailto, pdf")
	cmd.Flags().BoolVar(&send, "send", false, "Enviar por correo (requiere SMTP_HOST)")
	cmd.Flags().StringVar(&to, "to", "", "Destinatario (por defecto SUMMARY_TO)")
	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Modo de almacenamiento y conectividad remota",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			st := svc.Store.Status(cmd.Context())
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "modo: %s\n", st.Mode)
			if !st.RemoteConfigured {
				fmt.Fprintln(w, "remoto: no configurado")
				return nil
			}
			if st.RemoteReachable {
				fmt.Fprintln(w, "remoto: conectado")
				return nil
			}
			fmt.Fprintf(w, "remoto: sin conexión (%s)\n", st.RemoteError)
			return nil
		},
	}
}
