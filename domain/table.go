package domain

// Table is a mongo collection name.
type Table string

const (
	TableListings            Table = "listings"
	TableActivities          Table = "activities"
	TableAccounts            Table = "accounts"
	TableLedgerAccounts      Table = "ledger_accounts"
	TableMarketplaceSettings Table = "marketplace_settings"
)
