package vardump_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/bjaus/vardump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// --- Test types ---

type user struct {
	Name string
	Age  int
}

type empty struct{}

type hidden struct {
	name string
	age  int
}

type greeter struct{}

func (g greeter) Greet() {}

func sampleFunc() {}

// --- Leaf values ---

func TestDumpLeafValues(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().
		Set("t", true).
		Set("f", false).
		Set("n", nil).
		Set("x", 42).
		Set("pi", 3.5).
		Set("s", "hello")

	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	want := "$t (bool) = true\n" +
		"$f (bool) = false\n" +
		"$n (null) = null\n" +
		"$x (int) = 42\n" +
		"$pi (float) = 3.5\n" +
		"$s (string) = hello\n"
	assert.Equal(t, want, got)
}

func TestDumpNilSliceElement(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("v", []any{nil})
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	assert.Contains(t, got, "[0] (null) = null\n")
}

// --- Composites ---

func TestDumpStruct(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("user", user{Name: "Ada", Age: 36})
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	want := "$user (object: user) = {\n" +
		"   ->Name (string) = Ada\n" +
		"   ->Age (int) = 36\n" +
		"}\n"
	assert.Equal(t, want, got)
}

func TestDumpStructPointer(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("user", &user{Name: "Ada", Age: 36})
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	assert.Contains(t, got, "$user (object: user) = {\n")
	assert.Contains(t, got, "->Name (string) = Ada\n")
}

func TestDumpEmptyStruct(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("e", empty{})
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	assert.Equal(t, "$e (object: empty) = {}\n", got)
}

func TestDumpUnexportedFieldsOnly(t *testing.T) {
	t.Parallel()
	// Unexported fields are not members; the composite renders empty.
	vars := vardump.NewVars().Set("h", hidden{name: "x", age: 1})
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	assert.Equal(t, "$h (object: hidden) = {}\n", got)
}

// --- Collections ---

func TestDumpSlice(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("y", []any{1, "a b"})
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	want := "$y (array) = [\n" +
		"   [0] (int) = 1\n" +
		"   [1] (string) = a b\n" +
		"]\n"
	assert.Equal(t, want, got)
}

func TestDumpEmptySlice(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("y", []int{})
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	assert.Equal(t, "$y (array) = []\n", got)
}

func TestDumpMapSortedKeys(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("m", map[string]int{"b": 1, "a": 2, "c": 3})
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	want := "$m (array) = [\n" +
		"   .a (int) = 2\n" +
		"   .b (int) = 1\n" +
		"   .c (int) = 3\n" +
		"]\n"
	assert.Equal(t, want, got)
}

func TestDumpMapCollidingStringKeys(t *testing.T) {
	t.Parallel()
	// int 1 and string "1" stringify to the same key text; both entries must
	// render, ordered by value text for determinism.
	vars := vardump.NewVars().Set("m", map[any]any{1: "a", "1": "b"})
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	want := "$m (array) = [\n" +
		"   [1] (string) = a\n" +
		"   [1] (string) = b\n" +
		"]\n"
	assert.Equal(t, want, got)
}

func TestDumpOrderedMapInsertionOrder(t *testing.T) {
	t.Parallel()
	om := orderedmap.New[string, any]()
	om.Set("zebra", 1)
	om.Set("apple", 2)
	om.Set("mango", 3)
	vars := vardump.NewVars().Set("m", om)
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	want := "$m (array) = [\n" +
		"   .zebra (int) = 1\n" +
		"   .apple (int) = 2\n" +
		"   .mango (int) = 3\n" +
		"]\n"
	assert.Equal(t, want, got)
}

func TestDumpQuotedKeyWithSpace(t *testing.T) {
	t.Parallel()
	om := orderedmap.New[string, any]()
	om.Set("a b", 1)
	vars := vardump.NewVars().Set("m", om)
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	assert.Contains(t, got, "   ['a b'] (int) = 1\n")
}

// --- Callables ---

func TestDumpFunction(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("fn", sampleFunc)
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	assert.Contains(t, got, "$fn (function) = ")
	assert.Contains(t, got, "sampleFunc")
}

func TestDumpMethod(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("fn", greeter{}.Greet)
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	assert.Contains(t, got, "$fn (method) = ")
	assert.Contains(t, got, "Greet")
}

func TestDumpClosure(t *testing.T) {
	t.Parallel()
	fn := func(n int) int { return n }
	vars := vardump.NewVars().Set("fn", fn)
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	assert.Equal(t, "$fn (closure) = func(int) int\n", got)
}

// --- Resources ---

func TestDumpChannel(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("c", make(chan int))
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	assert.Equal(t, "$c (resource) = resource(chan int)\n", got)
}

// --- Depth guard ---

func TestDumpMaxDepthTruncation(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("v", []any{[]any{[]any{1}}})
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text), vardump.WithMaxDepth(1))
	want := "$v (array) = [\n" +
		"   [0] (array) = [\n" +
		"      [0] (max depth reached)\n" +
		"   ]\n" +
		"]\n"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "(int) = 1")
}

func TestDumpMaxDepthClamped(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("v", []any{[]any{1}})
	// Depth 0 is clamped to the minimum of 1, so the walk still descends one
	// level before truncating.
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text), vardump.WithMaxDepth(0))
	assert.Contains(t, got, "[0] (array) = [\n")
	assert.Contains(t, got, "(max depth reached)\n")
}

// --- HTML format ---

func TestDumpHTMLEndToEnd(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("x", 5).Set("y", []any{1, "a b"})
	got := vardump.Dump(vars)

	assert.True(t, strings.HasPrefix(got, `<pre style="`))
	assert.True(t, strings.HasSuffix(got, "</pre>\n"))
	assert.Contains(t, got, "$x (int) = 5<br>\n")
	assert.Contains(t, got, "$y (array) = [<br>\n")
	assert.Contains(t, got, "&nbsp;&nbsp;&nbsp;[0] (int) = 1<br>\n")
	assert.Contains(t, got, "&nbsp;&nbsp;&nbsp;[1] (string) = a b<br>\n")
	assert.Contains(t, got, "]<br>\n")
}

func TestDumpHTMLEscapesValues(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("xss", "<script>alert(1)</script>")
	got := vardump.Dump(vars)
	assert.Contains(t, got, "&lt;script&gt;")
	assert.NotContains(t, got, "<script>")
}

func TestDumpHTMLEscapesStyle(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("x", 1)
	got := vardump.Dump(vars, vardump.WithStyle(`"><script>`))
	assert.Contains(t, got, `<pre style="&#34;&gt;&lt;script&gt;">`)
	assert.NotContains(t, got, `"><script>`)
}

func TestDumpDefaultStyle(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("x", 1)
	got := vardump.Dump(vars)
	assert.Contains(t, got, `<pre style="`+vardump.DefaultStyle+`">`)
}

// --- Top-level contract ---

func TestDumpEmptyVars(t *testing.T) {
	t.Parallel()
	assert.Contains(t, vardump.Dump(vardump.NewVars()), "no variables")
	assert.Contains(t, vardump.Dump(nil), "no variables")
}

func TestDumpInsertionOrder(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("z", 1).Set("a", 2)
	got := vardump.Dump(vars, vardump.WithFormat(vardump.Text))
	assert.Equal(t, "$z (int) = 1\n$a (int) = 2\n", got)
}

func TestDumpIdempotent(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().
		Set("m", map[string]any{"b": 1, "a": []any{true, nil}}).
		Set("u", user{Name: "Ada", Age: 36})
	first := vardump.Dump(vars)
	second := vardump.Dump(vars)
	assert.Equal(t, first, second)
}

func TestDumpConcurrent(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("u", user{Name: "Ada", Age: 36}).Set("y", []any{1, 2})
	want := vardump.Dump(vars)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = vardump.Dump(vars)
		}()
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()
	vars := vardump.NewVars().Set("x", 5)
	var buf bytes.Buffer
	require.NoError(t, vardump.Write(&buf, vars, vardump.WithFormat(vardump.Text)))
	assert.Equal(t, vardump.Dump(vars, vardump.WithFormat(vardump.Text)), buf.String())
}

func TestDumpValue(t *testing.T) {
	t.Parallel()
	got := vardump.DumpValue("x", 5, vardump.WithFormat(vardump.Text))
	assert.Equal(t, "$x (int) = 5\n", got)
	// No container even in the HTML format.
	assert.Equal(t, "$x (int) = 5<br>\n", vardump.DumpValue("x", 5))
}

// --- Format parsing ---

func TestParseFormat(t *testing.T) {
	t.Parallel()
	f, err := vardump.ParseFormat("html")
	require.NoError(t, err)
	assert.Equal(t, vardump.HTML, f)

	f, err = vardump.ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, vardump.Text, f)

	_, err = vardump.ParseFormat("xml")
	assert.ErrorIs(t, err, vardump.ErrUnsupportedFormat)
}

func TestFormats(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []vardump.Format{vardump.HTML, vardump.Text}, vardump.Formats())
}
