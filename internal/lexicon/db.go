package lexicon

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// DBSource builds a lexicon from the number_word table:
//
//	CREATE TABLE number_word (
//	    role     TEXT    NOT NULL, -- unit | tens | scale
//	    position INTEGER NOT NULL, -- index within the role's table
//	    word     TEXT    NOT NULL
//	);
type DBSource struct {
	db    *sql.DB
	table string
}

// NewDBSource creates a source reading from number_word.
func NewDBSource(db *sql.DB) *DBSource {
	return &DBSource{
		db:    db,
		table: "number_word",
	}
}

// Load queries every row and assembles the three tables by position.
func (s *DBSource) Load(ctx context.Context) (*Lexicon, error) {
	query := fmt.Sprintf(`
		SELECT role, position, word
		FROM %s
		ORDER BY role, position
	`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying number words: %w", err)
	}
	defer rows.Close()

	spec := Spec{
		Units: make([]string, unitCount),
		Tens:  make([]string, tensCount),
	}
	var scales []string

	for rows.Next() {
		var roleName, word string
		var position int
		if err := rows.Scan(&roleName, &position, &word); err != nil {
			return nil, fmt.Errorf("scanning number word row: %w", err)
		}
		word = strings.ToLower(strings.TrimSpace(word))

		role, ok := ParseRole(strings.ToLower(strings.TrimSpace(roleName)))
		if !ok {
			return nil, fmt.Errorf("%w: unknown role %q for %q", ErrInvalidLexicon, roleName, word)
		}

		switch role {
		case RoleUnit:
			if position < 0 || position >= unitCount {
				return nil, fmt.Errorf("%w: unit position %d out of range", ErrInvalidLexicon, position)
			}
			spec.Units[position] = word
		case RoleTens:
			if position < 2 || position >= tensCount {
				return nil, fmt.Errorf("%w: tens position %d out of range", ErrInvalidLexicon, position)
			}
			spec.Tens[position] = word
		case RoleScale:
			if position < 0 || position >= maxScales {
				return nil, fmt.Errorf("%w: scale position %d out of range", ErrInvalidLexicon, position)
			}
			for len(scales) <= position {
				scales = append(scales, "")
			}
			scales[position] = word
		default:
			return nil, fmt.Errorf("%w: role %s is not stored", ErrInvalidLexicon, role)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading number words: %w", err)
	}

	spec.Scales = scales
	return FromSpec(spec)
}
