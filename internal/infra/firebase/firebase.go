// Package firebase initializes the Firebase app and exposes its Firestore and Auth clients.
package firebase

import (
	"context"
	"log/slog"
	"os"

	"tripbook/config"
	"tripbook/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const (
	envFirestoreEmulator = "FIRESTORE_EMULATOR_HOST"
	envAuthEmulator      = "FIREBASE_AUTH_EMULATOR_HOST"
)

// Params defines the dependencies of the Firebase app.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Clients bundles the Firebase clients used by the persistence and identity layers.
type Clients struct {
	fx.Out

	App       *firebase.App
	Firestore *firestore.Client
	Auth      *auth.Client
}

// New creates the Firebase app. With UseEmulator set, the SDK is pointed at the
// local emulators through their well-known environment variables.
func New(params Params) (Clients, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		return Clients{}, errors.New("firebase.projectId is required")
	}

	if cfg.UseEmulator {
		if err := setEmulatorEnv(cfg); err != nil {
			return Clients{}, err
		}
		params.Logger.Info("Using Firebase emulators",
			slog.String("auth_host", os.Getenv(envAuthEmulator)),
			slog.String("firestore_host", os.Getenv(envFirestoreEmulator)),
		)
	}

	opts := clientOptions(cfg)

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return Clients{}, errors.Wrap(err, "failed to initialize Firebase app")
	}

	authClient, err := app.Auth(params.Ctx)
	if err != nil {
		return Clients{}, errors.Wrap(err, "failed to get auth client")
	}

	var store *firestore.Client
	if cfg.FirestoreDatabase != "" && cfg.FirestoreDatabase != firestore.DefaultDatabaseID {
		store, err = firestore.NewClientWithDatabase(params.Ctx, cfg.ProjectID, cfg.FirestoreDatabase, opts...)
	} else {
		store, err = app.Firestore(params.Ctx)
	}
	if err != nil {
		return Clients{}, errors.Wrap(err, "failed to get firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(store.Close())
		},
	})

	params.Logger.Info("Firebase initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.String("database", databaseName(cfg)),
	)

	return Clients{App: app, Firestore: store, Auth: authClient}, nil
}

func clientOptions(cfg *config.FirebaseConfig) []option.ClientOption {
	if cfg.UseEmulator || cfg.CredentialsPath == "" {
		return nil
	}

	return []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsPath)}
}

func setEmulatorEnv(cfg *config.FirebaseConfig) error {
	hosts := map[string]string{
		envAuthEmulator:      cfg.EmulatorAuthHost,
		envFirestoreEmulator: cfg.EmulatorFirestoreHost,
	}
	for key, host := range hosts {
		if host == "" || os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, host); err != nil {
			return errors.Wrapf(err, "set %s", key)
		}
	}

	return nil
}

func databaseName(cfg *config.FirebaseConfig) string {
	if cfg.FirestoreDatabase == "" {
		return firestore.DefaultDatabaseID
	}

	return cfg.FirestoreDatabase
}

// Module provides the Firebase FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
