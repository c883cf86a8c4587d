package domain

// The default collection is identified by name, not by a reserved ID.
const (
	// UncategorizedName is the name of the default collection.
	UncategorizedName = "Uncategorized"
	// UncategorizedDescription is the description given to a freshly created default collection.
	UncategorizedDescription = "Default collection for uncategorized prompts"
)
