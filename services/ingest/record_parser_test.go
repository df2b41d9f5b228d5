package ingest

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lang-tour/models"
)

func TestFormatSingleRecord(t *testing.T) {
	p := NewRecordParser(nil)
	got := slices.Collect(p.Format("common name,length (cm)\nLittle penguin,33\n"))
	assert.Equal(t, []string{"Little penguin, 33cm"}, got)
}

func TestFormatPenguinData(t *testing.T) {
	p := NewRecordParser(nil)
	got := slices.Collect(p.Format(PenguinData))
	want := []string{
		"Little penguin, 33cm",
		"Yellow-eyed penguin, 65cm",
		"Fiordland penguin, 60cm",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Format mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, ParseStats{Lines: 6, Emitted: 3, Skipped: 2, Unparsable: 1}, p.Stats())
}

func TestFormatSkips(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  []string
	}{
		{name: "header only", block: "common name,length (cm)\n", want: nil},
		{name: "empty block", block: "", want: nil},
		{name: "numeric header is still skipped", block: "a,1\nb,2\n", want: []string{"b, 2cm"}},
		{name: "non numeric length", block: "h\nInvalid,data\n", want: nil},
		{name: "blank and whitespace lines", block: "h\n\n   \t\nok,1\n", want: []string{"ok, 1cm"}},
		{name: "fields trimmed", block: "h\n   Gentoo penguin ,  76.5  \n", want: []string{"Gentoo penguin, 76.5cm"}},
		{name: "single field", block: "h\nlonely\n", want: nil},
		{name: "extra fields ignored", block: "h\nKing penguin,95,extra\n", want: []string{"King penguin, 95cm"}},
		{name: "empty length", block: "h\nname,\n", want: nil},
		{name: "hex float rejected", block: "h\nhex,0x1p4\nupper,0X10\n", want: nil},
		{name: "digit separator rejected", block: "h\nhexus,0x_1p-2\nsep,1_000\n", want: nil},
		{name: "signed nan", block: "h\nnegnan,-nan\nposnan,+NaN\n", want: []string{"negnan, NaNcm", "posnan, NaNcm"}},
		{name: "double sign nan rejected", block: "h\nbad,+-nan\n", want: nil},
		{name: "infinities", block: "h\nup,+inf\ndown,-Infinity\n", want: []string{"up, infcm", "down, -infcm"}},
		{name: "overflow saturates", block: "h\nbig,1e50\n", want: []string{"big, infcm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewRecordParser(nil)
			assert.Equal(t, tt.want, slices.Collect(p.Format(tt.block)))
		})
	}
}

func TestFormatIsRepeatable(t *testing.T) {
	p := NewRecordParser(nil)
	first := slices.Collect(p.Format(PenguinData))
	firstStats := p.Stats()
	second := slices.Collect(p.Format(PenguinData))

	assert.Equal(t, first, second)
	assert.Equal(t, firstStats, p.Stats())
}

func TestRecordsEarlyStop(t *testing.T) {
	p := NewRecordParser(nil)
	var got []models.Record
	for rec := range p.Records(PenguinData) {
		got = append(got, rec)
		break
	}
	require.Len(t, got, 1)
	assert.Equal(t, models.Record{Name: "Little penguin", Length: 33}, got[0])
}

func TestParseLine(t *testing.T) {
	rec, err := ParseLine(" Macaroni penguin , 70 ")
	require.NoError(t, err)
	assert.Equal(t, models.Record{Name: "Macaroni penguin", Length: 70}, rec)

	_, err = ParseLine("Invalid,data")
	assert.ErrorIs(t, err, ErrUnparsableLength)

	_, err = ParseLine("no delimiter")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestMalformedCounted(t *testing.T) {
	p := NewRecordParser(nil)
	assert.Empty(t, slices.Collect(p.Records("h\nlonely\nalso lonely\n")))
	assert.Equal(t, uint64(2), p.Stats().Malformed)
}

func TestDebugEcho(t *testing.T) {
	var trace bytes.Buffer
	p := NewRecordParser(&trace)

	out := slices.Collect(p.Format("common name,length (cm)\n\nLittle penguin, 33\nInvalid,data\n"))
	assert.Equal(t, []string{"Little penguin, 33cm"}, out)

	lines := strings.Split(strings.TrimSuffix(trace.String(), "\n"), "\n")
	want := []string{
		`debug: "common name,length (cm)" -> ["common name", "length (cm)"]`,
		`debug: "" -> [""]`,
		`debug: "Little penguin, 33" -> ["Little penguin", "33"]`,
		`debug: "Invalid,data" -> ["Invalid", "data"]`,
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestDebugEchoEscapes(t *testing.T) {
	var trace bytes.Buffer
	p := NewRecordParser(&trace)
	for range p.Format("h\n\t\"quoted\",1\n") {
	}
	assert.Contains(t, trace.String(), `debug: "\t\"quoted\",1" -> ["\"quoted\"", "1"]`)
}
