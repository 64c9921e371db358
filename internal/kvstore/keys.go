package kvstore

import "context"

// ===============================
// Layout persistido
// ===============================

const (
	// ID da manicure logada (string pura)
	KeyCurrentProfile = "current_manicure_id"

	// JSON: id → Profile
	KeyProfiles = "profiles_by_id"

	// JSON: id da manicure → []Client
	KeyClients = "clients_by_manicure"

	// "true" depois que a primeira cliente foi cadastrada
	KeyFirstClientDone = "firstClientDone"
)

// ClearAll apaga todos os dados da aplicação de uma vez.
// Uso restrito ao ambiente de desenvolvimento.
func ClearAll(ctx context.Context, s Store) error {
	return s.MultiRemove(ctx,
		KeyCurrentProfile,
		KeyProfiles,
		KeyClients,
	)
}
