package labels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cloneTable(t Table) Table {
	out := make(Table, len(t))
	for lang, labels := range t {
		cp := make(map[Key]string, len(labels))
		for k, v := range labels {
			cp[k] = v
		}
		out[lang] = cp
	}
	return out
}

func TestDefaultTable_Valid(t *testing.T) {
	require.NoError(t, DefaultTable.Validate())
	for _, lang := range Supported {
		assert.Len(t, DefaultTable[lang], len(AllKeys), "lang %s", lang)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	table := cloneTable(DefaultTable)
	delete(table[Hindi], WaterToday)
	table[English][Share] = "   "

	err := table.Validate()
	require.Error(t, err)

	var cerr *ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.ElementsMatch(t, []MissingLabel{
		{Lang: English, Key: Share},
		{Lang: Hindi, Key: WaterToday},
	}, cerr.Missing)
	assert.Empty(t, cerr.Unexpected)
	assert.Contains(t, err.Error(), "missing hi/irrigation.water_today")
}

func TestValidate_MissingLanguage(t *testing.T) {
	table := cloneTable(DefaultTable)
	delete(table, Hindi)

	err := table.Validate()
	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Len(t, cerr.Missing, len(AllKeys))
}

func TestValidate_UnexpectedKey(t *testing.T) {
	table := cloneTable(DefaultTable)
	table[English]["tab.market"] = "Market"

	err := table.Validate()
	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Empty(t, cerr.Missing)
	assert.Equal(t, []MissingLabel{{Lang: English, Key: "tab.market"}}, cerr.Unexpected)
}

func TestNewCatalog(t *testing.T) {
	t.Run("rejects invalid table", func(t *testing.T) {
		table := cloneTable(DefaultTable)
		delete(table[English], TabHome)
		c, err := NewCatalog(table)
		assert.Nil(t, c)
		var cerr *ConfigurationError
		assert.ErrorAs(t, err, &cerr)
	})

	t.Run("copies the table", func(t *testing.T) {
		table := cloneTable(DefaultTable)
		c, err := NewCatalog(table)
		require.NoError(t, err)

		table[English][TabHome] = "changed"
		got, err := c.Lookup(English, TabHome)
		require.NoError(t, err)
		assert.Equal(t, "Home", got)
	})
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := NewCatalog(DefaultTable)
	require.NoError(t, err)

	got, err := c.Lookup(Hindi, TabCrops)
	require.NoError(t, err)
	assert.Equal(t, "फसलें", got)

	_, err = c.Lookup(Hindi, "does.not.exist")
	var cerr *ConfigurationError
	assert.ErrorAs(t, err, &cerr)

	_, err = c.Lookup("fr", TabCrops)
	assert.ErrorAs(t, err, &cerr)
}

func TestCatalog_Labels(t *testing.T) {
	c, err := NewCatalog(DefaultTable)
	require.NoError(t, err)

	labels, err := c.Labels(English)
	require.NoError(t, err)
	assert.Len(t, labels, len(AllKeys))

	labels[TabHome] = "mutated"
	again, err := c.Labels(English)
	require.NoError(t, err)
	assert.Equal(t, "Home", again[TabHome])

	_, err = c.Labels("fr")
	assert.Error(t, err)
}
