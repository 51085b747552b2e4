package models

// Default column positions of the reference dataset.
const (
	DefaultIDColumn      = 0
	DefaultFriendsColumn = 9
)

// Record is one parsed input row: a node and its listed friends.
type Record struct {
	ID      string
	Friends []string
}

// Schema locates the required fields within a row.
type Schema struct {
	IDColumn      int `yaml:"id_column"`
	FriendsColumn int `yaml:"friends_column"`
}

// DefaultSchema returns the column layout of the reference dataset.
func DefaultSchema() Schema {
	return Schema{IDColumn: DefaultIDColumn, FriendsColumn: DefaultFriendsColumn}
}

// Validate checks that both column indices are usable.
func (s Schema) Validate() error {
	if s.IDColumn < 0 {
		return ErrColumnOutOfRange("id column", s.IDColumn)
	}

	if s.FriendsColumn < 0 {
		return ErrColumnOutOfRange("friends column", s.FriendsColumn)
	}

	return nil
}

// MinColumns is the number of fields a row needs to satisfy the schema.
func (s Schema) MinColumns() int {
	return max(s.IDColumn, s.FriendsColumn) + 1
}
