package lessons

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(l func(w io.Writer)) []string {
	var buf bytes.Buffer
	l(&buf)
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestCatalogOrder(t *testing.T) {
	assert.Equal(t, []string{
		"greet", "sample", "variables", "types", "ranges", "complex",
		"chars", "maps", "strings", "references", "ownership",
	}, Names())

	for _, l := range All() {
		assert.NotNil(t, l.Run, l.Name)
		assert.NotEmpty(t, l.Summary, l.Name)
	}
}

func TestSelect(t *testing.T) {
	all, err := Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(Names()))

	picked, err := Select([]string{"maps", "greet"})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, "maps", picked[0].Name)
	assert.Equal(t, "greet", picked[1].Name)

	_, err = Select([]string{"greet", "borrowck"})
	assert.ErrorIs(t, err, ErrUnknownLesson)
	assert.ErrorContains(t, err, `"borrowck"`)
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Name = "changed"
	assert.Equal(t, "greet", All()[0].Name)
}

func TestGreet(t *testing.T) {
	assert.Equal(t, []string{"Grüß Gott!", "世界，你好", "World, hello!"}, run(Greet))
}

func TestSample(t *testing.T) {
	assert.Equal(t, []string{
		"Little penguin, 33cm",
		"Yellow-eyed penguin, 65cm",
		"Fiordland penguin, 60cm",
	}, run(Sample))
}

func TestVariables(t *testing.T) {
	assert.Equal(t, []string{
		"The value of x is: 5",
		"The value of x is: 6",
		"destructured: [1 2 1 4 5]",
		"The value of t in the inner scope is: 12",
		"The value of t is: 6",
		"The value of t outside every block is: 5",
	}, run(Variables))
}

func TestTypes(t *testing.T) {
	out := run(Types)
	assert.Contains(t, out, "98222")
	assert.Contains(t, out, "sqrt(-42) is undefined: NaN")
	assert.Contains(t, out, "20 + 21 + 22 = 63")
	assert.Contains(t, out, "1000000000000")
	assert.Contains(t, out, "42.00")

	text := strings.Join(out, "\n")
	assert.Contains(t, text, "abc (float32)\n   0.1 + 0.2: 3e99999a\n         0.3: 3e99999a\n       equal: true")
	assert.Contains(t, text, "xyz (float64)\n   0.1 + 0.2: 3fd3333333333334\n         0.3: 3fd3333333333333\n       equal: false")
}

func TestRanges(t *testing.T) {
	out := run(Ranges)
	require.Len(t, out, 4+5+26)
	assert.Equal(t, []string{"1", "2", "3", "4"}, out[:4])
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, out[4:9])
	assert.Equal(t, "a", out[9])
	assert.Equal(t, "z", out[len(out)-1])
}

func TestComplex(t *testing.T) {
	assert.Equal(t, []string{"13.2 + 21i", "a + b = (13.2+21i)"}, run(Complex))
}

func TestChars(t *testing.T) {
	assert.Equal(t, []string{
		"char A take 4 byte memory",
		"char A encodes to 1 byte(s) in UTF-8",
		"char 中 take 4 byte memory",
		"char 中 encodes to 3 byte(s) in UTF-8",
	}, run(Chars))
}

func TestMaps(t *testing.T) {
	assert.Equal(t, []string{"map: map[test1:{} test2:{}]"}, run(Maps))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, []string{"s1 starts as hello", "s1 = ahaha, s2 = demo, jimmy"}, run(Strings))
}

func TestReferences(t *testing.T) {
	assert.Equal(t, []string{"hello and hello", "hello, world", "r1 sees the write: true"}, run(References))
}

func TestOwnership(t *testing.T) {
	assert.Equal(t, []string{
		"ownership-hello",
		"ownership-5",
		"ownership-5",
		"given hello, handed back jello, original now jello",
	}, run(Ownership))
}

func TestLessonsAreRepeatable(t *testing.T) {
	for _, l := range All() {
		assert.Equal(t, run(l.Run), run(l.Run), l.Name)
	}
}
