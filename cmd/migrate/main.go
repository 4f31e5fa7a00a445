package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"market/config"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/errors"
	"market/internal/infra/auth"
	logs "market/internal/infra/log"
	"market/internal/infra/persistence/postgres"
	"market/internal/usecase"
	"market/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const runTimeout = 5 * time.Minute

type seedPath string

// seedCredential is one login to create after migrating.
type seedCredential struct {
	Role      string `koanf:"role"`
	SubjectID string `koanf:"subjectId"`
	Email     string `koanf:"email"`
	Name      string `koanf:"name"`
	Password  string `koanf:"password"`
}

type seedFile struct {
	Credentials []seedCredential `koanf:"credentials"`
}

type runParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
	Seed   seedPath
}

func main() {
	seed := flag.String("seed", "", "YAML file listing credentials to register after migrating")
	flag.Parse()

	app := fx.New(
		fx.NopLogger,
		fx.Supply(seedPath(*seed)),
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewCredentialRepository,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewAuthService,
		),
		fx.Invoke(run),
	)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
		os.Exit(1)
	}
}

// run registers the migration after the database ping hook.
func run(params runParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, params.DB, params.Logger); err != nil {
				return err
			}
			if params.Seed == "" {
				return nil
			}

			return seedCredentials(ctx, string(params.Seed), params.AuthUC, params.Logger)
		},
	})
}

func seedCredentials(ctx context.Context, path string, authUC usecase.AuthUsecase, logger *slog.Logger) error {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return errors.Wrapf(err, "read seed file %s", path)
	}

	var seeds seedFile
	if err := k.Unmarshal("", &seeds); err != nil {
		return errors.Wrap(err, "decode seed file")
	}

	for _, s := range seeds.Credentials {
		subjectID, err := uuid.Parse(s.SubjectID)
		if err != nil {
			return errors.Wrapf(err, "seed %s: invalid subject id", s.Email)
		}

		_, err = authUC.RegisterCredential(ctx, &usecase.RegisterCredentialInput{
			Role:      entity.Role(s.Role),
			SubjectID: subjectID,
			Email:     s.Email,
			Name:      s.Name,
			Password:  s.Password,
		})
		switch {
		case err == nil:
			logger.InfoContext(ctx, "Seeded credential", slog.String("role", s.Role), slog.String("email", s.Email))
		case errors.Is(err, domainerrors.ErrConflict):
			logger.InfoContext(ctx, "Credential already present", slog.String("role", s.Role), slog.String("email", s.Email))
		default:
			return errors.Wrapf(err, "seed %s %s", s.Role, s.Email)
		}
	}

	return nil
}
