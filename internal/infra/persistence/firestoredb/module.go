package firestoredb

import "go.uber.org/fx"

// Module provides the Firestore repositories
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewUserRepository,
		NewAgencyRepository,
		NewPackageRepository,
		NewBookingRepository,
		NewOutboxRepository,
	),
)
