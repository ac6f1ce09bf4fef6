package lexicon

import (
	"context"
	"errors"
	"fmt"

	"github.com/numwords/internal/db"
)

// ErrAmbiguousSource is returned when both a file and a DSN are configured.
var ErrAmbiguousSource = errors.New("both a lexicon file and a lexicon DSN are configured")

// Resolve picks the lexicon source: the file when file is set, the
// number_word table when dsn is set, otherwise Default. The returned string
// names the source for logging.
func Resolve(ctx context.Context, file, dsn string) (*Lexicon, string, error) {
	switch {
	case file != "" && dsn != "":
		return nil, "", ErrAmbiguousSource
	case file != "":
		lex, err := LoadFile(file)
		if err != nil {
			return nil, "", err
		}
		return lex, "file " + file, nil
	case dsn != "":
		conn, err := db.NewConnection(ctx, dsn)
		if err != nil {
			return nil, "", fmt.Errorf("connecting to lexicon database: %w", err)
		}
		defer conn.Close()

		lex, err := NewDBSource(conn.DB).Load(ctx)
		if err != nil {
			return nil, "", err
		}
		return lex, "database", nil
	}
	return Default(), "default", nil
}
