package tissue_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decolab/perfusion"
	"github.com/katalvlaran/decolab/tissue"
)

func TestNewTable_AllVariantsValid(t *testing.T) {
	for _, v := range []tissue.Variant{tissue.VariantA, tissue.VariantB, tissue.VariantC} {
		tbl, err := tissue.NewTable(v)
		require.NoError(t, err, v.String())
		assert.Equal(t, v, tbl.Variant())
		assert.Equal(t, tissue.Count, tbl.Len())
		assert.NoError(t, tbl.Validate(), v.String())
	}
}

func TestNewTable_UnknownVariant(t *testing.T) {
	_, err := tissue.NewTable(tissue.Variant(7))
	assert.ErrorIs(t, err, tissue.ErrUnknownVariant)
}

func TestVariants_OnlyACoefficientsDiffer(t *testing.T) {
	a := tissue.MustTable(tissue.VariantA)
	c := tissue.MustTable(tissue.VariantC)
	differ := 0
	for i := 0; i < tissue.Count; i++ {
		assert.Equal(t, a.At(i).HalfTime, c.At(i).HalfTime)
		assert.Equal(t, a.At(i).BN2, c.At(i).BN2)
		if a.At(i).AN2 != c.At(i).AN2 {
			differ++
		}
	}
	assert.Greater(t, differ, 0)
}

func TestTable_KnownValues(t *testing.T) {
	tbl := tissue.MustTable(tissue.VariantC)
	first, err := tbl.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, tissue.Compartment{ID: 1, HalfTime: 5, AN2: 1.1696, BN2: 0.5578}, first)

	last, err := tbl.ByID(16)
	require.NoError(t, err)
	assert.Equal(t, 635.0, last.HalfTime)

	_, err = tbl.ByID(0)
	assert.ErrorIs(t, err, tissue.ErrCompartmentIndex)
	_, err = tbl.ByID(17)
	assert.ErrorIs(t, err, tissue.ErrCompartmentIndex)
}

func TestTable_KnownACoefficientsPerVariant(t *testing.T) {
	want := map[tissue.Variant][tissue.Count]float64{
		tissue.VariantA: {
			1.1696, 1.0000, 0.8618, 0.7562, 0.6667, 0.5933, 0.5282, 0.4701,
			0.4187, 0.3798, 0.3497, 0.3223, 0.2971, 0.2737, 0.2523, 0.2327,
		},
		tissue.VariantB: {
			1.1696, 1.0000, 0.8618, 0.7562, 0.6667, 0.5600, 0.4947, 0.4500,
			0.4187, 0.3798, 0.3497, 0.3223, 0.2850, 0.2737, 0.2523, 0.2327,
		},
		tissue.VariantC: {
			1.1696, 1.0000, 0.8618, 0.7562, 0.6200, 0.5043, 0.4410, 0.4000,
			0.3750, 0.3500, 0.3295, 0.3065, 0.2835, 0.2610, 0.2480, 0.2327,
		},
	}
	for v, as := range want {
		tbl := tissue.MustTable(v)
		for i, a := range as {
			assert.Equal(t, a, tbl.At(i).AN2, "%s compartment %d", v, i+1)
		}
	}
}

func TestVariants_BDiffersFromA(t *testing.T) {
	a := tissue.MustTable(tissue.VariantA)
	b := tissue.MustTable(tissue.VariantB)
	var differ []int
	for i := 0; i < tissue.Count; i++ {
		assert.Equal(t, a.At(i).HalfTime, b.At(i).HalfTime)
		assert.Equal(t, a.At(i).BN2, b.At(i).BN2)
		if a.At(i).AN2 != b.At(i).AN2 {
			differ = append(differ, i+1)
		}
	}
	assert.Equal(t, []int{6, 7, 8, 13}, differ)
}

func TestTable_CompartmentsIsACopy(t *testing.T) {
	tbl := tissue.MustTable(tissue.VariantB)
	cs := tbl.Compartments()
	cs[0].AN2 = 99
	assert.Equal(t, 1.1696, tbl.At(0).AN2)
}

func TestParseVariant(t *testing.T) {
	cases := map[string]tissue.Variant{
		"A": tissue.VariantA, "b": tissue.VariantB, "ZH-L16C": tissue.VariantC,
		" zh-l16a ": tissue.VariantA, "ZHL16B": tissue.VariantB,
	}
	for in, want := range cases {
		got, err := tissue.ParseVariant(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := tissue.ParseVariant("D")
	assert.ErrorIs(t, err, tissue.ErrUnknownVariant)
}

func TestRegistry_SwapKeepsPinnedSnapshot(t *testing.T) {
	r := tissue.NewRegistry(tissue.VariantA, nil)
	pinned := r.Active()
	assert.Equal(t, uint64(1), pinned.Version())

	next := r.SetVariant(tissue.VariantC)
	assert.Equal(t, uint64(2), next.Version())
	assert.Same(t, next, r.Active())

	// the earlier snapshot is untouched
	assert.Equal(t, tissue.VariantA, pinned.Variant())
	assert.Equal(t, 0.5933, pinned.At(5).AN2)
}

func TestRegistry_UnknownVariantFallsBackWithWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r := tissue.NewRegistry(tissue.VariantA, logger)

	got := r.SetVariant(tissue.Variant(42))
	assert.Equal(t, tissue.ConservativeVariant, got.Variant())
	assert.Contains(t, buf.String(), "unknown compartment variant")

	buf.Reset()
	got = r.SetVariantName("ZH-L16Q")
	assert.Equal(t, tissue.ConservativeVariant, got.Variant())
	assert.Contains(t, buf.String(), "ZH-L16Q")
}

func TestRegistry_ConcurrentReadersSeeWholeTables(t *testing.T) {
	r := tissue.NewRegistry(tissue.VariantA, nil)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				tbl := r.Active()
				want := tissue.MustTable(tbl.Variant())
				for j := 0; j < tissue.Count; j++ {
					if tbl.At(j).AN2 != want.At(j).AN2 {
						t.Errorf("torn table at version %d", tbl.Version())
						return
					}
				}
			}
		}()
	}
	for i := 0; i < 100; i++ {
		r.SetVariant(tissue.Variant(i % 3))
	}
	wg.Wait()
	assert.Equal(t, uint64(101), r.Active().Version())
}

func TestRateConstant(t *testing.T) {
	c := tissue.MustTable(tissue.VariantC).At(0)
	assert.InDelta(t, 0.693147/5, c.RateConstant(), 1e-6)
	assert.Equal(t, perfusion.RateConstant(5), c.RateConstant())
}

func TestFill(t *testing.T) {
	s := tissue.Fill(0.74)
	for _, p := range s {
		assert.Equal(t, 0.74, p)
	}
}

func TestDefaultRegistry(t *testing.T) {
	assert.Len(t, tissue.Compartments(), tissue.Count)
	assert.NotNil(t, tissue.Active())
}
