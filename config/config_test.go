package config

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/pkg/errors"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/fs"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, c.Rounds, DefaultRounds)
	assert.Equal(t, c.Inserts, DefaultInserts)
	assert.DeepEqual(t, c.Containers, []string{ForwardList, List, Vector})
	assert.DeepEqual(t, c.Seed, DefaultSeed)
	assert.NilError(t, c.Validate())

	c.Seed[0] = 100
	assert.Equal(t, DefaultSeed[0], 1)
}

func TestParseStressConfig(t *testing.T) {
	c, err := ParseStressConfig(`
rounds = 2
inserts = 10
containers = ["vector", "list"]
seed = [3, 1, 2]
log_level = "debug"
random_seed = 42
`)
	assert.NilError(t, err)
	assert.DeepEqual(t, c, &StressConfig{
		Rounds:     2,
		Inserts:    10,
		Containers: []string{Vector, List},
		Seed:       []int{3, 1, 2},
		RandomSeed: 42,
		LogLevel:   "debug",
	})
}

func TestParseStressConfigDefaults(t *testing.T) {
	c, err := ParseStressConfig(`inserts = 7`)
	assert.NilError(t, err)
	assert.Equal(t, c.Inserts, 7)
	assert.Equal(t, c.Rounds, DefaultRounds)
	assert.Equal(t, len(c.Containers), 3)
	assert.DeepEqual(t, c.Seed, DefaultSeed)
}

func TestParseStressConfigEmptySeed(t *testing.T) {
	c, err := ParseStressConfig(`seed = []`)
	assert.NilError(t, err)
	assert.Equal(t, len(c.Seed), 0)
}

func TestParseStressConfigInvalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"negative rounds", `rounds = -1`},
		{"negative inserts", `inserts = -5`},
		{"no containers", `containers = []`},
		{"unknown container", `containers = ["deque"]`},
		{"duplicate container", `containers = ["list", "list"]`},
		{"bad level", `log_level = "loud"`},
		{"unknown key", `iterations = 3`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseStressConfig(tc.doc)
			assert.Assert(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestParseStressConfigSyntax(t *testing.T) {
	_, err := ParseStressConfig(`rounds = `)
	assert.Assert(t, err != nil)
	assert.Assert(t, !errors.Is(err, ErrInvalidConfig))
	assert.Assert(t, is.Contains(err.Error(), "decoding stress config"))
}

func TestLoadStressConfigFromFile(t *testing.T) {
	dir := fs.NewDir(t, "seq-config",
		fs.WithFile("stress.toml", "rounds = 1\ninserts = 3\ncontainers = [\"forwardlist\"]\n"),
		fs.WithFile("broken.toml", "rounds = \"many\"\n"),
	)
	defer dir.Remove()

	c, err := LoadStressConfigFromFile(dir.Join("stress.toml"))
	assert.NilError(t, err)
	assert.Equal(t, c.Rounds, 1)
	assert.Equal(t, c.Inserts, 3)
	assert.DeepEqual(t, c.Containers, []string{ForwardList})

	_, err = LoadStressConfigFromFile(dir.Join("broken.toml"))
	assert.Assert(t, is.Contains(err.Error(), "broken.toml"))

	_, err = LoadStressConfigFromFile(filepath.Join(dir.Path(), "missing.toml"))
	assert.Assert(t, err != nil)
}

func TestLoadStressConfigEmptyPath(t *testing.T) {
	c, err := LoadStressConfigFromFile("")
	assert.NilError(t, err)
	assert.DeepEqual(t, c, Default())
}

func TestLoadStressConfigMockFS(t *testing.T) {
	old := fileSystem
	defer func() { fileSystem = old }()
	fileSystem = fstest.MapFS{
		"etc/seq/stress.toml": &fstest.MapFile{Data: []byte("rounds = 9\n")},
	}

	c, err := LoadStressConfigFromFile("etc/seq/stress.toml")
	assert.NilError(t, err)
	assert.Equal(t, c.Rounds, 9)
}
