package completion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmczar/texpath/internal/document"
	"github.com/tmczar/texpath/internal/logger"
)

type stubStrategy struct {
	roots   []string
	folders bool
	files   bool
}

func (s *stubStrategy) ScanRoots(_ *document.Document) []string { return s.roots }
func (s *stubStrategy) SearchFolders() bool                     { return s.folders }
func (s *stubStrategy) SearchFiles() bool                       { return s.files }

func testLogger() *logger.Logger {
	return logger.New("error", os.Stderr)
}

func testDoc() *document.Document {
	return document.New("/proj/main.tex", "")
}

func displays(proposals []Proposal) []string {
	out := make([]string, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, p.Display)
	}
	return out
}

func TestProvider_Complete_EmptyToken(t *testing.T) {
	host := newFakeHost("/proj")
	host.dirs["/proj"] = []Candidate{
		{Name: "figures", IsDir: true},
		{Name: "chapters", IsDir: true},
		{Name: "main.tex", Ext: "tex"},
	}

	strategy := &stubStrategy{roots: []string{"/proj"}, folders: true, files: true}
	provider := NewProvider(host, strategy, testLogger())

	proposals := provider.Complete(testDoc(), Request{Raw: ""})

	assert.Equal(t, []string{".", "..", "figures", "chapters", "main.tex"}, displays(proposals))
}

func TestProvider_Complete_PartialSegmentWithAllowList(t *testing.T) {
	host := newFakeHost("/proj", "/proj/figures")
	host.dirs["/proj/figures"] = []Candidate{
		{Name: "plot1.png", Ext: "png"},
		{Name: "plot2.png", Ext: "png"},
		{Name: "table.csv", Ext: "csv"},
	}

	strategy := &stubStrategy{roots: []string{"/proj"}, folders: false, files: true}
	provider := NewProvider(host, strategy, testLogger())
	engine := NewEngine(provider)

	raw := "figures/pl"
	cons := NewConstraints([]string{"png"}, true)
	proposals := engine.Complete(testDoc(), Request{Raw: raw, Constraints: &cons})
	proposals = engine.Filter(proposals, engine.Live(raw))

	require.Len(t, proposals, 2)
	assert.Equal(t, "figures/plot1.png", proposals[0].Insert)
	assert.Equal(t, "figures/plot2.png", proposals[1].Insert)
}

func TestProvider_Complete_NilConstraintsIsPermissive(t *testing.T) {
	host := newFakeHost("/etc")
	host.dirs["/etc"] = []Candidate{{Name: "hosts", Ext: ""}}

	strategy := &stubStrategy{roots: []string{"/proj"}, folders: false, files: true}
	provider := NewProvider(host, strategy, testLogger())

	proposals := provider.Complete(testDoc(), Request{Raw: "/etc/"})

	require.Len(t, proposals, 1)
	assert.Equal(t, "/etc/hosts", proposals[0].Insert)
}

func TestProvider_Complete_AbsoluteSuppressed(t *testing.T) {
	host := newFakeHost("/etc", "/proj")
	host.dirs["/etc"] = []Candidate{{Name: "hosts"}}

	strategy := &stubStrategy{roots: []string{"/proj"}, folders: true, files: true}
	provider := NewProvider(host, strategy, testLogger())

	cons := NewConstraints(nil, false)
	proposals := provider.Complete(testDoc(), Request{Raw: "/etc/", Constraints: &cons})
	assert.Empty(t, proposals)
}

func TestProvider_Complete_AbsoluteScansOnce(t *testing.T) {
	host := newFakeHost("/etc", "/proj", "/other")
	host.dirs["/etc"] = []Candidate{{Name: "hosts"}}

	// Several roots must not duplicate the absolute interpretation.
	strategy := &stubStrategy{roots: []string{"/proj", "/other"}, folders: false, files: true}
	provider := NewProvider(host, strategy, testLogger())

	proposals := provider.Complete(testDoc(), Request{Raw: "/etc/"})
	require.Len(t, proposals, 1)
	assert.Equal(t, "/etc/hosts", proposals[0].Insert)
}

func TestProvider_Complete_SkipsUnresolvableRoots(t *testing.T) {
	host := newFakeHost("/b")
	host.dirs["/b"] = []Candidate{{Name: "kept.tex", Ext: "tex"}}

	strategy := &stubStrategy{roots: []string{"/missing", "/b"}, folders: false, files: true}
	provider := NewProvider(host, strategy, testLogger())

	proposals := provider.Complete(testDoc(), Request{Raw: ""})
	require.Len(t, proposals, 1)
	assert.Equal(t, "kept.tex", proposals[0].Display)
}

func TestProvider_Complete_NoRoots(t *testing.T) {
	host := newFakeHost("/etc")
	provider := NewProvider(host, &stubStrategy{folders: true, files: true}, testLogger())

	assert.Empty(t, provider.Complete(testDoc(), Request{Raw: ""}))
	assert.Empty(t, provider.Complete(testDoc(), Request{Raw: "/etc/"}))
}

func TestProvider_Complete_MergesMultipleRoots(t *testing.T) {
	host := newFakeHost("/a", "/b")
	host.dirs["/a"] = []Candidate{{Name: "one.tex", Ext: "tex"}}
	host.dirs["/b"] = []Candidate{{Name: "two.tex", Ext: "tex"}}

	strategy := &stubStrategy{roots: []string{"/a", "/b"}, folders: false, files: true}
	provider := NewProvider(host, strategy, testLogger())

	proposals := provider.Complete(testDoc(), Request{Raw: ""})
	assert.Equal(t, []string{"one.tex", "two.tex"}, displays(proposals))
}

func TestEngine_Filter(t *testing.T) {
	engine := NewEngine()

	proposals := []Proposal{
		{Display: "plot1.png"},
		{Display: "plot2.png"},
		{Display: "table.csv"},
	}

	filtered := engine.Filter(proposals, "")
	assert.Len(t, filtered, 3)

	filtered = engine.Filter(proposals, "pl")
	assert.Len(t, filtered, 2)

	filtered = engine.Filter(proposals, "table.csv")
	assert.Len(t, filtered, 1)

	filtered = engine.Filter(proposals, "zzz")
	assert.Empty(t, filtered)
}

func TestEngine_Complete_MergesProviders(t *testing.T) {
	host := newFakeHost("/a", "/b")
	host.dirs["/a"] = []Candidate{{Name: "one.tex", Ext: "tex"}}
	host.dirs["/b"] = []Candidate{{Name: "two.png", Ext: "png"}}

	log := testLogger()
	first := NewProvider(host, &stubStrategy{roots: []string{"/a"}, files: true}, log)
	second := NewProvider(host, &stubStrategy{roots: []string{"/b"}, files: true}, log)
	engine := NewEngine(first, second)

	proposals := engine.Complete(testDoc(), Request{Raw: ""})
	assert.Equal(t, []string{"one.tex", "two.png"}, displays(proposals))
}

// End-to-end over the real filesystem.
func TestProvider_Complete_OSHost(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "figures"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "chapters"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "main.tex"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "figures", "plot1.png"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "figures", "plot2.png"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "figures", "table.csv"), []byte(""), 0644))

	strategy := &stubStrategy{roots: []string{tmpDir}, folders: true, files: true}
	provider := NewProvider(OSHost{}, strategy, testLogger())
	engine := NewEngine(provider)

	// Empty token proposes navigation, directories and files.
	proposals := provider.Complete(testDoc(), Request{Raw: ""})
	got := displays(proposals)
	assert.Contains(t, got, ".")
	assert.Contains(t, got, "..")
	assert.Contains(t, got, "figures")
	assert.Contains(t, got, "chapters")
	assert.Contains(t, got, "main.tex")

	// Partial segment inside figures with a png allow-list.
	raw := "figures/pl"
	cons := NewConstraints([]string{"png"}, true)
	proposals = engine.Complete(testDoc(), Request{Raw: raw, Constraints: &cons})
	proposals = engine.Filter(proposals, engine.Live(raw))

	inserts := make([]string, 0, len(proposals))
	for _, p := range proposals {
		if p.Behavior == FileReferenceInsert {
			inserts = append(inserts, p.Insert)
		}
	}
	assert.ElementsMatch(t, []string{"figures/plot1.png", "figures/plot2.png"}, inserts)
}
