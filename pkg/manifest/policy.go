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
	"context"
	"encoding/json"
	"log/slog"

	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
	"github.com/NVIDIA/kubeprov/pkg/serializer"
)

// LoadPolicy reads an autoscaling policy from a JSON or YAML file, or an
// http(s) URL. Unknown keys are ignored.
func LoadPolicy(ctx context.Context, path string) (*AutoscalingPolicy, error) {
	policy, err := serializer.FromFile[AutoscalingPolicy](ctx, path)
	if err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeInvalidConfig,
			"failed to load autoscaling policy", err, map[string]any{"path": path})
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	minReplicas, maxReplicas := policy.Bounds()
	slog.Debug("autoscaling policy loaded",
		"path", path, "min_replicas", minReplicas, "max_replicas", maxReplicas, "triggers", len(policy.Triggers))
	return policy, nil
}

// normalizeTriggers round-trips triggers through JSON so the ScaledObject
// holds only JSON-compatible values regardless of the policy's source format.
func normalizeTriggers(triggers []map[string]any) ([]any, error) {
	if len(triggers) == 0 {
		return []any{}, nil
	}
	data, err := json.Marshal(triggers)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, "autoscaling triggers are not serializable", err)
	}
	var out []any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, "autoscaling triggers are not serializable", err)
	}
	return out, nil
}
