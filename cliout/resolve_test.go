package cliout

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	c := New(&bytes.Buffer{})

	for _, kind := range AllKinds() {
		t.Run(string(kind), func(t *testing.T) {
			p, err := c.Resolve(kind, Override{})
			require.NoError(t, err)
			assert.Equal(t, Presentation{
				Color:      kind.DefaultColor(),
				Mark:       kind.DefaultMark(),
				ColorSpan:  SpanLine,
				ShowHeader: true,
			}, p)
		})
	}
}

func TestResolveOrder(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, WithColor(false))

	c.Error("a")
	assert.Equal(t, ClearLineSeq+"[-] a\n", buf.String())

	require.NoError(t, c.ConfigureMap(map[string]any{"errorMark": "X"}))
	buf.Reset()
	c.Error("b")
	assert.Equal(t, ClearLineSeq+"[X] b\n", buf.String())

	buf.Reset()
	require.NoError(t, c.Print(KindError, "c", Override{Mark: Ptr("Y")}))
	assert.Equal(t, ClearLineSeq+"[Y] c\n", buf.String())
}

func TestResolvePerField(t *testing.T) {
	c := New(&bytes.Buffer{})
	require.NoError(t, c.Configure(Options{
		ColorSpan: Ptr(SpanMark),
		Colors:    map[LabelKind]Color{KindInfo: Blue},
	}))

	p, err := c.Resolve(KindInfo, Override{ShowHeader: Ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, Blue, p.Color)
	assert.Equal(t, "i", p.Mark)
	assert.Equal(t, SpanMark, p.ColorSpan)
	assert.False(t, p.ShowHeader)

	p, err = c.Resolve(KindInfo, Override{Color: Ptr(ColorNone), ColorSpan: Ptr(SpanNone)})
	require.NoError(t, err)
	assert.Equal(t, ColorNone, p.Color)
	assert.Equal(t, SpanNone, p.ColorSpan)
	assert.True(t, p.ShowHeader)
}

func TestResolveInvalid(t *testing.T) {
	c := New(&bytes.Buffer{})

	tests := []struct {
		name string
		kind LabelKind
		o    Override
	}{
		{"unknown kind", LabelKind("debug"), Override{}},
		{"bad color", KindInfo, Override{Color: Ptr(Color("\033[1m"))}},
		{"empty mark", KindInfo, Override{Mark: Ptr("")}},
		{"bad span", KindInfo, Override{ColorSpan: Ptr(ColorSpan(4))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Resolve(tt.kind, tt.o)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestPrintInvalidWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	err := c.Print(KindSuccess, "x", Override{ColorSpan: Ptr(ColorSpan(-1))})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Empty(t, buf.String())
}

func TestLabelHelpers(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, WithColor(false))

	c.Section("Demo")
	c.Item("item %d", 1)
	c.Success("ok")
	c.Warning("careful")
	c.Info("100%%")
	c.Progress("working")
	c.Plain("plain")
	c.Newline()

	assert.Equal(t,
		ClearLineSeq+"[#] Demo\n"+
			ClearLineSeq+"[*] item 1\n"+
			ClearLineSeq+"[+] ok\n"+
			ClearLineSeq+"[!] careful\n"+
			ClearLineSeq+"[i] 100%\n"+
			ClearLineSeq+"[=] working\n"+
			ClearLineSeq+"[*] plain\n"+
			"\n",
		buf.String())
}

func TestLabelColors(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Success("ok")
	assert.Equal(t, ClearLineSeq+string(BrightGreen)+"[+] ok"+Reset+"\n", buf.String())

	buf.Reset()
	c.SetColorEnabled(false)
	c.Success("ok")
	assert.Equal(t, ClearLineSeq+"[+] ok\n", buf.String())
	assert.False(t, c.ColorEnabled())
}

func TestDefaultConsole(t *testing.T) {
	var buf bytes.Buffer
	prev := SetDefault(New(&buf, WithColor(false)))
	t.Cleanup(func() { SetDefault(prev) })

	Warning("disk %d%% full", 90)
	assert.Equal(t, ClearLineSeq+"[!] disk 90% full\n", buf.String())

	ForceColor()
	assert.True(t, Default().ColorEnabled())
	NoColor()
	assert.False(t, Default().ColorEnabled())

	require.NoError(t, ConfigureMap(map[string]any{"warning_mark": "W"}))
	buf.Reset()
	Warning("again")
	assert.Equal(t, ClearLineSeq+"[W] again\n", buf.String())
}
