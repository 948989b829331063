package app

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/verbnet-reader/internal/config"
	"github.com/heartmarshall/verbnet-reader/internal/index"
	"github.com/heartmarshall/verbnet-reader/internal/metrics"
)

func TestOpenLexicon_Files(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{config.IndexQuick, config.IndexFull} {
		t.Run(mode, func(t *testing.T) {
			t.Parallel()

			m := metrics.New()
			lex, err := OpenLexicon(context.Background(), testConfig(t, mode), discardLogger(), m)
			require.NoError(t, err)
			t.Cleanup(lex.Close)

			assert.Nil(t, lex.Pool)
			assert.Equal(t, index.Stats{Documents: 2, Classes: 5, Lemmas: 8, SenseIDs: 10}, lex.Index.Stats())
			assert.Equal(t, 5.0, testutil.ToFloat64(m.IndexEntries.WithLabelValues("classes")))
			assert.Equal(t, 1, testutil.CollectAndCount(m.IndexBuildDuration))

			lemmas, err := lex.Service.Lemmas(context.Background(), "confess-37.10")
			require.NoError(t, err)
			assert.Equal(t, []string{"admit", "confess", "place"}, lemmas)
		})
	}
}

func TestOpenLexicon_CountsDocumentLoads(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	lex, err := OpenLexicon(context.Background(), testConfig(t, config.IndexQuick), discardLogger(), m)
	require.NoError(t, err)

	_, err = lex.Store.OpenParsed(context.Background(), "put-9.1.xml")
	require.NoError(t, err)
	_, err = lex.Store.OpenParsed(context.Background(), "missing-1.xml")
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DocumentLoadsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DocumentLoadsTotal.WithLabelValues("error")))
}

func TestOpenLexicon_MissingRoot(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, config.IndexQuick)
	cfg.Corpus.Root = t.TempDir() + "/nope"

	_, err := OpenLexicon(context.Background(), cfg, discardLogger(), metrics.New())
	require.Error(t, err)
}

func TestImport_RequiresDSN(t *testing.T) {
	t.Parallel()

	_, err := Import(context.Background(), testConfig(t, config.IndexQuick), discardLogger(), fixtureRoot(t))
	require.ErrorIs(t, err, errNoDSN)
}

func TestMigrate_RequiresDSN(t *testing.T) {
	t.Parallel()

	_, err := Migrate(context.Background(), testConfig(t, config.IndexQuick), discardLogger())
	require.ErrorIs(t, err, errNoDSN)
}

func TestBuildVersion(t *testing.T) {
	t.Parallel()

	info := VersionInfo{Version: "1.2.0", Commit: "abc123", BuildTime: "2026-01-02"}
	assert.Equal(t, "1.2.0 (commit: abc123, built: 2026-01-02)", info.String())
	assert.Equal(t, Info().String(), BuildVersion())
}
