package postgres

// Crop namespaces
const (
	NamespaceBaseline = "baseline"
	NamespaceUser     = "user"
)

const cropColumns = `id, name, type, planted_at, harvest_at, nft_token_id, image_url,
	description, expected_yield, actual_yield, rarity`

// Log messages
const (
	LogMsgBaselineSeeded = "Baseline crops seeded"
	LogMsgRollbackFailed = "Failed to rollback transaction"
)
