package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"
)

// AddIndexes creates the secondary indexes the repair and listing
// queries depend on.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// User listing sorts by creation time
		{"users", "idx_users_created_at", "created_at"},

		// Membership lookups by either side of the relation
		{"user_group_relations", "idx_relations_user_id", "user_id"},
		{"user_group_relations", "idx_relations_group_id", "group_id"},

		// Groups owned by a user
		{"groups", "idx_groups_owner_id", "owner_id"},

		// Iterations of a group, pairs of an iteration
		{"iterations", "idx_iterations_group_id", "group_id"},
		{"pairs", "idx_pairs_iteration_id", "iteration_id"},

		// Pairs referencing a user on either side
		{"pairs", "idx_pairs_gifting_user_id", "gifting_user_id"},
		{"pairs", "idx_pairs_gifted_user_id", "gifted_user_id"},
	}

	// Identifiers must be quoted per dialect; "groups" is a reserved
	// word in MySQL 8.
	quote := func(name string) string {
		var sb strings.Builder
		db.Dialector.QuoteTo(&sb, name)
		return sb.String()
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)",
			quote(idx.name), quote(idx.table), quote(idx.columns))
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
