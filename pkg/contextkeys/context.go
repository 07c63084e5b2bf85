package contextkeys

// ContextKey is the type used for values stored in request contexts.
type ContextKey string

const (
	// DBContextKey holds the *gorm.DB handle (the shared pool, or a
	// transaction when a test injects one).
	DBContextKey ContextKey = "db"
)
