// Carga masiva de productos contra el API. Lee un JSON con filas de
// producto, inicia sesión, y las envía en lotes a /api/products/bulk.
// Los lotes que fallan por transporte se reintentan UNA vez a la mitad
// del tamaño; las filas definitivamente fallidas quedan en
// failed_products.json para seguimiento manual.
//
// Uso:
//
//	seed --file data/products.json --api http://localhost:8080 --user admin --pass '#Admin2026' --batch 50
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/soulsisters/joyeria-api/internal/application/auth"
)

var (
	flagFile     string
	flagAPI      string
	flagUser     string
	flagPass     string
	flagBatch    int
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga masiva de productos contra el API de inventario",
	Long: `Lee un arreglo JSON de productos y lo envía por lotes a
POST /api/products/bulk, autenticándose primero con las credenciales
indicadas. Los lotes no entregados se reintentan una vez a la mitad
del tamaño; las filas definitivamente fallidas se guardan en
failed_products.json.

Las filas rechazadas individualmente por el servidor (categoría
inválida, nombre vacío) no detienen la carga ni cambian el código de
salida: el resultado por fila queda en el log y en failed_products.json.`,
	RunE:          runSeed,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagFile, "file", "", "archivo JSON con el arreglo de productos (requerido)")
	rootCmd.Flags().StringVar(&flagAPI, "api", "http://localhost:8080", "URL base del API")
	rootCmd.Flags().StringVar(&flagUser, "user", "admin", "usuario para iniciar sesión")
	rootCmd.Flags().StringVar(&flagPass, "pass", "", "password para iniciar sesión (requerido)")
	rootCmd.Flags().IntVar(&flagBatch, "batch", 50, "tamaño de lote para la carga masiva")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "nivel de log (debug, info, warn, error)")
	_ = rootCmd.MarkFlagRequired("file")
	_ = rootCmd.MarkFlagRequired("pass")
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(flagLogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func runSeed(cmd *cobra.Command, args []string) error {
	log := newLogger()

	if flagBatch < 1 {
		return fmt.Errorf("el tamaño de lote debe ser al menos 1, recibido %d", flagBatch)
	}

	rows, err := readRows(flagFile)
	if err != nil {
		return fmt.Errorf("leer %s: %w", flagFile, err)
	}
	log.Info().Int("productos", len(rows)).Str("api", flagAPI).Msg("iniciando carga")

	cli := newClient(flagAPI)
	if err := cli.login(flagUser, flagPass); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	// Vigilar la vigencia del token mientras dura la carga: con archivos
	// grandes la sesión de 4h puede quedarse corta. Al expirar se descarta
	// el token y los lotes restantes fallan como no entregados.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	monitor := auth.NewMonitor(cli.session.Token)
	monitor.OnWarning = func(remaining time.Duration) {
		log.Warn().Dur("restante", remaining).Msg("la sesión está por expirar")
	}
	monitor.OnExpired = func() {
		log.Error().Msg("la sesión expiró durante la carga")
		cli.session.Logout()
	}
	monitor.Start(ctx)

	succeeded, rowFailures, retryRows := importBatches(log, cli, rows, flagBatch)

	// Un solo reintento, a la mitad del tamaño de lote. Solo para filas
	// cuyo lote completo falló por transporte; las filas rechazadas por
	// el servidor (resultado por fila) no se reintentan.
	var undeliveredAfterRetry int
	if len(retryRows) > 0 {
		half := flagBatch / 2
		if half < 1 {
			half = 1
		}
		log.Warn().Int("filas", len(retryRows)).Int("batch", half).Msg("reintentando lotes fallidos")
		s, f, still := importBatches(log, cli, retryRows, half)
		succeeded += s
		rowFailures = append(rowFailures, f...)
		for _, r := range still {
			rowFailures = append(rowFailures, failedRow{Name: r.Name, Error: "lote no entregado tras reintento"})
		}
		undeliveredAfterRetry = len(still)
	}

	log.Info().
		Int("exitosos", succeeded).
		Int("fallidos", len(rowFailures)).
		Int("total", len(rows)).
		Msg("carga finalizada")

	if len(rowFailures) > 0 {
		if err := writeFailed(rowFailures); err != nil {
			return fmt.Errorf("guardar %s: %w", failedFile, err)
		}
		log.Warn().Str("file", failedFile).Msg("filas fallidas guardadas")
	}

	// Las fallas por fila no son fatales: el resto del lote quedó aplicado.
	// Solo la pérdida de lotes completos tras el reintento termina con error.
	if undeliveredAfterRetry > 0 {
		return fmt.Errorf("%d filas no entregadas tras el reintento", undeliveredAfterRetry)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
