package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stemcheck/internal/config"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func fixtures(t *testing.T) (dict, corpus string) {
	t.Helper()
	dir := t.TempDir()
	dict = filepath.Join(dir, "ru.dict")
	require.NoError(t, os.WriteFile(dict, []byte("привет\nмир\nдом\n"), 0o644))
	corpus = filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(corpus, []byte("Привет, мир! Привет, дом. Мир."), 0o644))
	return dict, corpus
}

func TestCheckText(t *testing.T) {
	dict, corpus := fixtures(t)

	out, err := run(t, "Превет, мир! Превет.", "check", "--dictionary", dict, "--corpus", corpus)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "# high confidence (>= 0.95): 1", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2  превет  привет"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "1.00"), lines[1])
	assert.Equal(t, "# low confidence (< 0.95): 0", lines[2])
}

func TestCheckJSONFile(t *testing.T) {
	dict, corpus := fixtures(t)
	in := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("превет"), 0o644))

	out, err := run(t, "", "check", "--json", "--dictionary", dict, "--corpus", corpus, in)
	require.NoError(t, err)

	var rep struct {
		High []struct {
			Source string `json:"source"`
			Spell  string `json:"spell"`
			Count  int    `json:"count"`
		} `json:"high"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.High, 1)
	assert.Equal(t, "привет", rep.High[0].Spell)
	assert.Equal(t, 1, rep.Total)
}

func TestCheckRawLimit(t *testing.T) {
	dict, corpus := fixtures(t)

	out, err := run(t, "превет превет превет", "check", "--raw", "-n", "2", "--dictionary", dict, "--corpus", corpus)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "превет привет "), l)
	}
}

func TestCheckErrors(t *testing.T) {
	dict, _ := fixtures(t)

	_, err := run(t, "", "check")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "", "check", "--dictionary", dict, filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "", "check", "--dictionary", dict, "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestFreq(t *testing.T) {
	_, corpus := fixtures(t)

	out, err := run(t, "", "freq", corpus)
	require.NoError(t, err)
	assert.Equal(t, "мир    2\nпривет 2\nдом    1\n", out)

	out, err = run(t, "", "freq", "--top", "1", "--corpus", corpus)
	require.NoError(t, err)
	assert.Equal(t, "мир 2\n", out)

	_, err = run(t, "", "freq")
	assert.Error(t, err)
}

func TestWord(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv(config.EnvRedisAddr, mr.Addr())

	out, err := run(t, "", "word", "add", "Котэ", "ёжик")
	require.NoError(t, err)
	assert.Equal(t, "котэ\nежик\n", out)

	out, err = run(t, "", "word", "list")
	require.NoError(t, err)
	assert.Equal(t, "ежик\nкотэ\n", out)

	_, err = run(t, "", "word", "remove", "котэ")
	require.NoError(t, err)
	members, err := mr.Members(config.DefaultDictKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"ежик"}, members)

	_, err = run(t, "", "word", "add", "cat")
	assert.Error(t, err)
	_, err = run(t, "", "word", "add")
	assert.Error(t, err)
}
