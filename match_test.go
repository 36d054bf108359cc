package luapat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// found returns the whole matched substring or "" when there is no match,
// with a separate flag for "matched at all".
func found(t *testing.T, pat, src string) (string, bool) {
	t.Helper()
	mr, err := Find(pat, src)
	require.NoError(t, err, "Find(%q, %q)", pat, src)
	if mr == nil {
		return "", false
	}
	return mr.Text(), true
}

func TestFindWhole(t *testing.T) {
	t.Parallel()
	matchTests := []struct {
		pat, str string
		succ     bool
		want     string
	}{
		{".*b", "aaab", true, "aaab"},
		{".*a", "aaa", true, "aaa"},
		{".*b", "b", true, "b"},
		{".+b", "aaab", true, "aaab"},
		{".+a", "aaa", true, "aaa"},
		{".+b", "b", false, ""},
		{".?b", "aaab", true, "ab"},
		{".?a", "aaa", true, "aa"},
		{".?b", "b", true, "b"},
		{"%l*", "aloALO", true, "alo"},
		{"%a*", "aLo_ALO", true, "aLo"},
		{"%g%g%g+", "  \n\r*&\n\r   xuxu  \n\n", true, "xuxu"},
		{"a*", "aaab", true, "aaa"},
		{"^.*$", "aaa", true, "aaa"},
		{"b*", "aaa", true, ""},
		{"ab*a", "aaa", true, "aa"},
		{"ab*a", "aba", true, "aba"},
		{"a+", "aaab", true, "aaa"},
		{"^.+$", "aaa", true, "aaa"},
		{"b+", "aaa", false, ""},
		{"ab+a", "aaa", false, ""},
		{"ab+a", "aba", true, "aba"},
		{".$", "a$a", true, "a"},
		{".%$", "a$a", true, "a$"},
		{".$.", "a$a", true, "a$a"},
		{"$$", "a$a", false, ""},
		{"a$", "a$b", false, ""},
		{"$", "a$a", true, ""},
		{"b*", "", true, ""},
		{"bb*", "aaa", false, ""},
		{"a-", "aaab", true, ""},
		{"^.-$", "aaa", true, "aaa"},
		{"b.*b", "aabaaabaaabaaaba", true, "baaabaaabaaab"},
		{"b.-b", "aabaaabaaabaaaba", true, "baaab"},
		{".o$", "alo xo", true, "xo"},
		{"%S%S*", " \n isto \x82 assim", true, "isto"},
		{"%S*$", " \n isto \x82 assim", true, "assim"},
		{"[a-z]*$", " \n isto \x82 assim", true, "assim"},
		{"[^%sa-z]", "um caracter ? extra", true, "?"},
		{"a?", "", true, ""},
		{"\xe1?", "\xe1", true, "\xe1"},
		{"\xe1?b?l?", "\xe1bl", true, "\xe1bl"},
		{"a?b?l?", "  abl", true, ""},
		{"^aa?a?a", "aa", true, "aa"},
		{"%x*", "0alo alo", true, "0a"},
		{"%C+", "alo alo", true, "alo alo"},
		{"[]]bc", "]]]bc", true, "]bc"},
		{"x=x", "x=x", true, "x=x"},
		{"^[=-]", "=", true, "="},
		{"(%w+)K", "alo xyzK", true, "xyzK"},
		{"12", "alo123alo", true, "12"},
		{"^12", "alo123alo", false, ""},
		{"^([=]*)=%1$", "==========", false, ""},
		{"", "", true, ""},
		{"", "alo", true, ""},
	}
	for i, test := range matchTests {
		got, succ := found(t, test.pat, test.str)
		require.Equal(t, test.succ, succ, "[%d] Find(%q, %q)", i, test.pat, test.str)
		assert.Equal(t, test.want, got, "[%d] Find(%q, %q)", i, test.pat, test.str)
	}
}

func TestFindPositions(t *testing.T) {
	t.Parallel()
	posTests := []struct {
		pat, str   string
		start, end int
	}{
		{"", "", 0, 0},
		{"", "alo", 0, 0},
		{"a", "a\x00o a\x00o a\x00o", 0, 1},
		{"b", "a\x00a\x00a\x00a\x00\x00ab", 10, 11},
		{"12", "alo123alo", 3, 5},
		{"%(\xe1", "(\xe1lo)", 0, 2},
		{"$\x00?", "b$a", 1, 2},
		{"%\x00", "abc\x00efg", 3, 4},
	}
	for _, test := range posTests {
		mr, err := Find(test.pat, test.str)
		require.NoError(t, err)
		require.NotNil(t, mr, "Find(%q, %q)", test.pat, test.str)
		start, end := mr.Position()
		assert.Equal(t, test.start, start, "Find(%q, %q) start", test.pat, test.str)
		assert.Equal(t, test.end, end, "Find(%q, %q) end", test.pat, test.str)
	}

	// patterns that must not match at all
	for _, test := range []struct{ pat, str string }{
		{"b\x00", "a\x00\x00a\x00ab"},
		{"\x00", ""},
	} {
		mr, err := Find(test.pat, test.str)
		require.NoError(t, err)
		assert.Nil(t, mr, "Find(%q, %q)", test.pat, test.str)
	}
}

func TestFindCaptures(t *testing.T) {
	t.Parallel()
	capTests := []struct {
		pat, str string
		caps     []string
	}{
		{"(%w+)K", "alo xyzK", []string{"xyz"}},
		{"(%d*)K", "254 K", []string{""}},
		{"(%w*)$", "alo ", []string{""}},
		{"^(tes(t+)set)$", "testtset", []string{"testtset", "tt"}},
		{"^(((.).).* (%w*))$", "clo alo", []string{"clo alo", "cl", "c", "alo"}},
		{"(.)=%1", "x=x", []string{"x"}},
	}
	for _, test := range capTests {
		mr, err := Find(test.pat, test.str)
		require.NoError(t, err)
		require.NotNil(t, mr, "Find(%q, %q)", test.pat, test.str)
		require.Equal(t, len(test.caps), mr.Size())
		for i, want := range test.caps {
			sub, err := mr.At(i)
			require.NoError(t, err)
			assert.Equal(t, want, sub.Text, "Find(%q, %q) capture %d", test.pat, test.str, i)
		}
	}

	mr, err := Find("(%w+)$", "alo ")
	require.NoError(t, err)
	assert.Nil(t, mr)
}

func TestFindPositionCaptures(t *testing.T) {
	t.Parallel()
	mr, err := Find("(.+(.?)())", "0123456789")
	require.NoError(t, err)
	require.NotNil(t, mr)
	require.Equal(t, 3, mr.Size())
	whole, err := mr.At(0)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", whole.Text)
	empty, err := mr.At(1)
	require.NoError(t, err)
	assert.Equal(t, "", empty.Text)
	assert.False(t, empty.Pos)
	pos, err := mr.At(2)
	require.NoError(t, err)
	assert.True(t, pos.Pos)
	assert.Equal(t, 10, pos.Start)
}

func TestFrontier(t *testing.T) {
	t.Parallel()
	frontierTests := []struct {
		pat, str string
		start    int
	}{
		{"%f[a]", "a", 0},
		{"%f[^%z]", "a", 0},
		{"%f[^%l]", "a", 1},
		{"%f[a%z]", "aba", 2},
		{"%f[%z]", "aba", 3},
	}
	for _, test := range frontierTests {
		mr, err := Find(test.pat, test.str)
		require.NoError(t, err)
		require.NotNil(t, mr, "Find(%q, %q)", test.pat, test.str)
		start, _ := mr.Position()
		assert.Equal(t, test.start, start, "Find(%q, %q)", test.pat, test.str)
	}

	for _, pat := range []string{"%f[%l%z]", "%f[^%l%z]"} {
		mr, err := Find(pat, "aba")
		require.NoError(t, err)
		assert.Nil(t, mr, "Find(%q, %q)", pat, "aba")
	}

	mr, err := Find("%f[%S].-%f[%s].-%f[%S]", " alo aalo allo")
	require.NoError(t, err)
	require.NotNil(t, mr)
	start, end := mr.Position()
	assert.Equal(t, 1, start)
	assert.Equal(t, 5, end)

	mr, err = Find("%f[%S](.-%f[%s].-%f[%S])", " alo aalo allo")
	require.NoError(t, err)
	require.NotNil(t, mr)
	sub, err := mr.At(0)
	require.NoError(t, err)
	assert.Equal(t, "alo ", sub.Text)
}

func TestBalance(t *testing.T) {
	t.Parallel()
	balanceTests := []struct {
		pat, str string
		want     string
	}{
		{"%b()", "(9 ((8))(7) 6)", "(9 ((8))(7) 6)"},
		{"%b''", "alo 'oi' alo", "'oi'"},
		{"%b\x00z", "abc\x00q\x00zyz", "\x00q\x00zyz"},
		{"%bz\x00", "abczqz\x00y\x00", "zqz\x00y\x00"},
		// equal delimiters never nest; the next occurrence closes
		{"%baa", "xaaya", "aa"},
	}
	for _, test := range balanceTests {
		got, succ := found(t, test.pat, test.str)
		require.True(t, succ, "Find(%q, %q)", test.pat, test.str)
		assert.Equal(t, test.want, got, "Find(%q, %q)", test.pat, test.str)
	}

	for _, test := range []struct{ pat, str string }{
		{"%b()", "(9 ((8) 7"},
		{"%b()", "xyz"},
	} {
		mr, err := Find(test.pat, test.str)
		require.NoError(t, err)
		assert.Nil(t, mr, "Find(%q, %q)", test.pat, test.str)
	}
}

func TestEmbeddedZeroClasses(t *testing.T) {
	t.Parallel()
	zeroTests := []struct {
		pat, str string
		want     string
	}{
		{"[\x00-\x02]+", "ab\x00\x01\x02c", "\x00\x01\x02"},
		{"[\x00-\x00]+", "ab\x00\x01\x02c", "\x00"},
		{"%\x00+", "abc\x00\x00\x00", "\x00\x00\x00"},
		{"%\x00%\x00?", "abc\x00\x00\x00", "\x00\x00"},
	}
	for _, test := range zeroTests {
		got, succ := found(t, test.pat, test.str)
		require.True(t, succ, "Find(%q, %q)", test.pat, test.str)
		assert.Equal(t, test.want, got, "Find(%q, %q)", test.pat, test.str)
	}
}

func TestBackrefToPositionCaptureNeverMatches(t *testing.T) {
	t.Parallel()
	mr, err := Find("()%1", "11")
	require.NoError(t, err)
	assert.Nil(t, mr)
}
