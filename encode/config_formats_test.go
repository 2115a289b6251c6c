package encode_test

import (
	"testing"

	"github.com/on-the-ground/recipes_go/encode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chapterList struct {
	Chapters []string `yaml:"chapters"`
}

func TestYAMLRoundTrip(t *testing.T) {
	in := chapterList{Chapters: []string{"numbers", "decimals", "seqs"}}

	data, err := encode.ToYAML(in)
	require.NoError(t, err)
	assert.Equal(t, "chapters:\n    - numbers\n    - decimals\n    - seqs\n", string(data))

	out, err := encode.FromYAML[chapterList](data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFromYAMLError(t *testing.T) {
	_, err := encode.FromYAML[chapterList]([]byte("chapters: [unterminated"))
	assert.Error(t, err)
}

type manifest struct {
	Title string `toml:"title"`
	Owner struct {
		Name string `toml:"name"`
	} `toml:"owner"`
}

func TestFromTOML(t *testing.T) {
	data := []byte("title = \"recipes\"\n\n[owner]\nname = \"on-the-ground\"\n")

	m, err := encode.FromTOML[manifest](data)
	require.NoError(t, err)
	assert.Equal(t, "recipes", m.Title)
	assert.Equal(t, "on-the-ground", m.Owner.Name)
}

func TestFromTOMLError(t *testing.T) {
	_, err := encode.FromTOML[manifest]([]byte("title = "))
	assert.Error(t, err)
}
