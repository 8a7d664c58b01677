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

package manifest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/yaml"

	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
)

// Render marshals a document to YAML. Keys are sorted, so output is stable.
func Render(obj *unstructured.Unstructured) ([]byte, error) {
	data, err := yaml.Marshal(obj.Object)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal,
			fmt.Sprintf("failed to render %s %s", obj.GetKind(), obj.GetName()), err)
	}
	return data, nil
}

// WriteFiles renders every present document into dir and returns the file
// paths in apply order. dir is created if missing; empty means the working
// directory.
func (m *Manifests) WriteFiles(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeIO,
			"failed to create output directory", err, map[string]any{"dir": dir})
	}

	docs := m.Documents()
	paths := make([]string, 0, len(docs))
	for _, doc := range docs {
		data, err := Render(doc.Object)
		if err != nil {
			return paths, err
		}

		path := filepath.Join(dir, doc.Filename)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, cerrors.WrapWithContext(cerrors.ErrCodeIO,
				"failed to write manifest", err, map[string]any{"path": path})
		}
		slog.Debug("manifest written", "path", path, "kind", doc.Object.GetKind(), "bytes", len(data))
		paths = append(paths, path)
	}
	return paths, nil
}
