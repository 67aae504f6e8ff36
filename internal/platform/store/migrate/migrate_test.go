package migrate

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDriverURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
		err      bool
	}{
		{"postgres://u:p@h:5432/db?sslmode=disable", "pgx5://u:p@h:5432/db?sslmode=disable", false},
		{"postgresql://u@h/db", "pgx5://u@h/db", false},
		{"pgx5://u@h/db", "pgx5://u@h/db", false},
		{"mysql://u@h/db", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		got, err := DriverURL(c.in)
		if (err != nil) != c.err || got != c.want {
			t.Fatalf("DriverURL(%q) = %q, %v", c.in, got, err)
		}
	}
}

func TestEmbeddedFiles_PairedAndOrdered(t *testing.T) {
	t.Parallel()

	names, err := fs.Glob(files, "migrations/*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	want := []string{
		"migrations/000001_create_jokes.down.sql",
		"migrations/000001_create_jokes.up.sql",
		"migrations/000002_seed_jokes.down.sql",
		"migrations/000002_seed_jokes.up.sql",
	}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected migration files %v", names)
	}
}

func TestSeed_HasTenJokes(t *testing.T) {
	t.Parallel()

	b, err := fs.ReadFile(files, "migrations/000002_seed_jokes.up.sql")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// one tuple per line, each opening with ('
	if n := strings.Count(string(b), "\n    ('"); n != 10 {
		t.Fatalf("expected 10 seeded jokes, got %d", n)
	}
}

func TestNew_RejectsBadScheme(t *testing.T) {
	t.Parallel()
	if _, err := New("mysql://x", zerolog.Nop()); err == nil {
		t.Fatalf("expected scheme error")
	}
}

func TestLogAdapter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	z := zlAdapter{log: zerolog.New(&buf).Level(zerolog.DebugLevel)}
	if !z.Verbose() {
		t.Fatalf("debug level should be verbose")
	}
	z.Printf("applied %d\n", 1)
	if !strings.Contains(buf.String(), `"message":"applied 1"`) {
		t.Fatalf("unexpected log line %s", buf.String())
	}

	if (zlAdapter{log: zerolog.Nop().Level(zerolog.InfoLevel)}).Verbose() {
		t.Fatalf("info level should not be verbose")
	}
}
