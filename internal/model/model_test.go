package model_test

import (
	"encoding/json"
	"testing"

	"github.com/maxviazov/biblioteca-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_HeaderFirstAndNullTitle(t *testing.T) {
	title := "Cien años de soledad"
	table := model.NewTable([]model.Material{{Title: &title, Pages: 471}, {Title: nil, Pages: 3}})

	out, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `[["titulo","num_paginas"],["Cien años de soledad",471],[null,3]]`, string(out))
}

func TestHeader_IsACopy(t *testing.T) {
	h := model.Header()
	h[0] = "changed"
	assert.Equal(t, model.Row{"titulo", "num_paginas"}, model.Header())
}
