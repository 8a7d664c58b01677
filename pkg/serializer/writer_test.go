// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testReport struct {
	Name  string `json:"name" yaml:"name"`
	Ready int    `json:"ready" yaml:"ready"`
}

type testTable struct {
	rows [][]string
}

func (t testTable) Header() []string { return []string{"NAME", "READY"} }
func (t testTable) Rows() [][]string { return t.rows }

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(context.Background(), testReport{Name: "myapp", Ready: 3}))

	var got testReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testReport{Name: "myapp", Ready: 3}, got)
	assert.Contains(t, buf.String(), "\n  \"name\"")
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(context.Background(), testReport{Name: "myapp", Ready: 1}))

	var got testReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "myapp", got.Name)
	assert.Equal(t, 1, got.Ready)
}

func TestWriter_SerializeTable(t *testing.T) {
	t.Run("tabular value", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(FormatTable, &buf)

		err := w.Serialize(context.Background(), testTable{rows: [][]string{{"myapp-1", "true"}, {"myapp-2", "false"}}})
		require.NoError(t, err)

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 3)
		assert.Equal(t, "NAME     READY", string(lines[0]))
		assert.Equal(t, "myapp-1  true", string(lines[1]))
	})

	t.Run("non tabular value", func(t *testing.T) {
		w := NewWriter(FormatTable, &bytes.Buffer{})
		err := w.Serialize(context.Background(), testReport{})
		assert.Error(t, err)
	})

	t.Run("ragged row", func(t *testing.T) {
		w := NewWriter(FormatTable, &bytes.Buffer{})
		err := w.Serialize(context.Background(), testTable{rows: [][]string{{"only-one"}}})
		assert.Error(t, err)
	})
}

func TestNewWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	require.NoError(t, w.Serialize(context.Background(), map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a":1}`, buf.String())
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		assert.False(t, Format(f).IsUnknown(), f)
	}
	assert.True(t, Format("").IsUnknown())
	assert.True(t, Format("csv").IsUnknown())
}
