// Package bootstrap arma el grafo de dependencias compartido por el servidor
// HTTP y la CLI: almacenamiento dual, coordinador de ventas y casos de uso.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	appanalytics "github.com/jhoicas/antorcha-inventario/internal/application/analytics"
	"github.com/jhoicas/antorcha-inventario/internal/application/ledger"
	"github.com/jhoicas/antorcha-inventario/internal/application/summary"
	"github.com/jhoicas/antorcha-inventario/internal/application/transfer"
	"github.com/jhoicas/antorcha-inventario/internal/application/usecase"
	"github.com/jhoicas/antorcha-inventario/internal/domain/repository"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/local"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/mail"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/antorcha-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/antorcha-inventario/internal/infrastructure/redis"
	"github.com/jhoicas/antorcha-inventario/internal/infrastructure/store"
	"github.com/jhoicas/antorcha-inventario/pkg/config"
	"github.com/jhoicas/antorcha-inventario/pkg/logger"
)

// idempotencyTTL vigencia de una Idempotency-Key en memoria.
const idempotencyTTL = 24 * time.Hour

// Services dependencias listas para usar.
type Services struct {
	Store     *store.Store
	Products  *usecase.ProductUseCase
	Sales     *usecase.SaleUseCase
	Cash      *usecase.CashUseCase
	Dashboard *appanalytics.DashboardUseCase
	Summary   *summary.UseCase
	Transfer  *transfer.UseCase

	closers []func()
}

// Close libera conexiones y el almacenamiento local, en orden inverso.
func (s *Services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// New abre el almacenamiento local, conecta el remoto (si está configurado) y
// construye los casos de uso. Un remoto caído no impide arrancar.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Services, error) {
	svc := &Services{}

	localCfg := local.DefaultConfig(cfg.Local.Path)
	if cfg.Local.InMemory {
		localCfg = local.InMemoryConfig()
	}
	localCfg.Logger = log.Component("badger")
	localBackend, err := local.Open(localCfg)
	if err != nil {
		return nil, fmt.Errorf("abrir almacenamiento local: %w", err)
	}
	svc.closers = append(svc.closers, func() {
		if err := localBackend.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento local")
		}
	})

	var remote repository.Backend
	if cfg.Remote.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.Remote)
		if err != nil {
			svc.Close()
			return nil, fmt.Errorf("configurar backend remoto: %w", err)
		}
		pg := postgres.NewBackend(pool)
		svc.closers = append(svc.closers, pg.Close)
		if cfg.Remote.AutoMigrate {
			mctx, cancel := context.WithTimeout(ctx, 15*time.Second)
			if err := pg.Migrate(mctx); err != nil {
				log.Warn().Err(err).Msg("migración remota no aplicada; se reintentará en el próximo arranque")
			}
			cancel()
		}
		remote = pg
	}

	st := store.New(localBackend, remote, log.Component("store"))
	svc.Store = st

	locker, idem := coordination(ctx, cfg, log, svc)
	coord := ledger.NewCoordinator(st, locker,
		ledger.WithIdempotency(idem),
		ledger.WithLogger(log.Component("ledger")),
	)

	svc.Products = usecase.NewProductUseCase(st.Products())
	svc.Sales = usecase.NewSaleUseCase(coord, st.Sales(), st.Products())
	svc.Cash = usecase.NewCashUseCase(st.Cash())
	svc.Dashboard = appanalytics.NewDashboardUseCase(st.Products(), st.Sales(), st.Cash())

	opts := []summary.Option{
		summary.WithPDF(infrapdf.NewSummaryPDF("")),
		summary.WithLowStock(cfg.Summary.LowStock),
		summary.WithRecipient(cfg.Summary.To),
	}
	if cfg.SMTP.Enabled() {
		opts = append(opts, summary.WithMailer(mail.NewMailer(cfg.SMTP, log.Component("mail"))))
	}
	svc.Summary = summary.NewUseCase(st.Products(), st.Sales(), st.Cash(), opts...)
	svc.Transfer = transfer.NewUseCase(st.Products(), log.Component("transfer"))

	log.Info().
		Str("mode", st.Mode()).
		Bool("redis", cfg.Redis.Enabled()).
		Bool("smtp", cfg.SMTP.Enabled()).
		Msg("servicios inicializados")
	return svc, nil
}

// coordination elige Redis para locks e idempotencia si responde; si no, memoria.
func coordination(ctx context.Context, cfg *config.Config, log *logger.Logger, svc *Services) (ledger.Locker, ledger.IdempotencyStore) {
	if cfg.Redis.Enabled() {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err == nil {
			svc.closers = append(svc.closers, func() { _ = client.Close() })
			return infraredis.NewLocker(client), infraredis.NewIdempotency(client)
		}
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible; se usan locks en memoria")
	}
	return memory.NewKeyedMutex(), memory.NewIdempotency(idempotencyTTL)
}
