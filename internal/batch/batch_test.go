package batch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorcv/internal/matlib"
)

const sampleCSV = `id,type,p1,p2,p3,p4,p5,p6,material,As,As_prime,M_kNm,N_kN
T1,rettangolare,300,500,,,,,C25 (Rck25),804,0,40,0
T2,T,300,500,1000,120,,,C280 (storico),1200,400,60,-100
`

func TestReadCSV(t *testing.T) {
	elements, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, elements, 2)

	assert.Equal(t, "T1", elements[0].ID)
	assert.Equal(t, "rettangolare", elements[0].Type)
	assert.Equal(t, [6]float64{300, 500, 0, 0, 0, 0}, elements[0].Params)
	assert.Equal(t, 804.0, elements[0].As)
	assert.Equal(t, 40.0, elements[0].M)

	assert.Equal(t, "T", elements[1].Type)
	assert.Equal(t, -100.0, elements[1].N)
}

func TestReadCSVHeaderAliases(t *testing.T) {
	in := "tipo,p1,p2,materiale,momento,as_inf\nrettangolare,300,500,C25 (Rck25),35,600\n"
	elements, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, 35.0, elements[0].M)
	assert.Equal(t, 600.0, elements[0].As)
	assert.Equal(t, "C25 (Rck25)", elements[0].Material)
}

func TestReadCSVDecimalComma(t *testing.T) {
	in := "type,p1,p2,M_kNm\ncircolare,\"400,5\",,\"12,5\"\n"
	elements, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, 400.5, elements[0].Params[0])
	assert.Equal(t, 12.5, elements[0].M)
}

func TestReadCSVMissingTypeColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b,c\n1,2,3\n"))
	assert.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {
	elements, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, elements))

	again, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, elements, again)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{
		"id", "type", "p1", "p2", "material", "M_kNm",
	}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{
		"X1", "rettangolare", 300, 500, "C25 (Rck25)", 40,
	}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	elements, err := ReadXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "X1", elements[0].ID)
	assert.Equal(t, [6]float64{300, 500, 0, 0, 0, 0}, elements[0].Params)
	assert.Equal(t, 40.0, elements[0].M)
}

func TestEquivalentBars(t *testing.T) {
	// One ⌀10 is 78.54 mm².
	assert.Equal(t, 1, equivalentBars(10))
	assert.Equal(t, 1, equivalentBars(79))
	assert.Equal(t, 10, equivalentBars(804))
}

func TestBuildSection(t *testing.T) {
	lib := matlib.Default()
	sec, err := BuildSection(lib, Element{
		ID: "T1", Type: "rettangolare", Params: [6]float64{300, 500},
		Material: "C25 (Rck25)", As: 804,
	})
	require.NoError(t, err)

	assert.InDelta(t, 25.0/3.0, sec.Concrete.SigmaAllowable, 1e-9)
	// Steel falls back to the stock grade for a concrete-only entry.
	assert.InDelta(t, 320.0/2.3, sec.Steel.SigmaAllowable, 1e-9)
	// 10 equivalent ⌀10 bars at d = 465.
	assert.InDelta(t, 785.4, sec.As(), 0.05)
	assert.InDelta(t, 465.0, sec.EffectiveDepth(), 1e-9)
}

func TestRunContinuesPastBadRows(t *testing.T) {
	lib := matlib.Default()
	results := Run(lib, []Element{
		{ID: "ok", Type: "rettangolare", Params: [6]float64{300, 500}, Material: "C25 (Rck25)", As: 804, M: 40},
		{ID: "bad-shape", Type: "esagonale", Params: [6]float64{300, 500}},
		{ID: "bad-material", Type: "rettangolare", Params: [6]float64{300, 500}, Material: "vetro"},
		{ID: "props-only", Type: "circolare", Params: [6]float64{400}},
	})
	require.Len(t, results, 4)

	ok := results[0]
	assert.Empty(t, ok.Error)
	assert.Greater(t, ok.NeutralAxis, 0.0)
	assert.Greater(t, ok.MomentResistance, 0.0)
	assert.True(t, ok.Converged)

	assert.NotEmpty(t, results[1].Error)
	assert.NotEmpty(t, results[2].Error)

	props := results[3]
	assert.Empty(t, props.Error)
	assert.Greater(t, props.Area, 0.0)
	assert.Zero(t, props.MomentResistance)
}

func TestRunFlagsMomentWithoutSteel(t *testing.T) {
	lib := matlib.Default()
	results := Run(lib, []Element{
		{ID: "no-steel", Type: "rettangolare", Params: [6]float64{300, 500}, Material: "C25 (Rck25)", M: 40},
	})
	require.Len(t, results, 1)

	// A moment with no tension steel must not pass as a quiet
	// properties-only row.
	res := results[0]
	assert.Contains(t, res.Error, "no tension reinforcement")
	assert.False(t, res.Verified)
	assert.Greater(t, res.Area, 0.0)
}

func TestWriteResultsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResultsCSV(&buf, []Result{
		{ID: "T1", Kind: "rettangolare", Area: 150000, Verified: true, Converged: true},
	}))
	out := buf.String()
	assert.Contains(t, out, "id,kind,area_mm2")
	assert.Contains(t, out, "T1,rettangolare,150000")
}
