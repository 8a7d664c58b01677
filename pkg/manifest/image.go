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
	"github.com/distribution/reference"

	"github.com/NVIDIA/kubeprov/pkg/defaults"
	cerrors "github.com/NVIDIA/kubeprov/pkg/errors"
)

// ImageReference joins image and tag into a container image reference.
// An image that already carries a tag or digest is returned unchanged and
// pinned reports true, meaning tag was ignored.
func ImageReference(image, tag string) (ref string, pinned bool, err error) {
	named, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return "", false, cerrors.WrapWithContext(cerrors.ErrCodeInvalidRequest,
			"invalid image reference", err, map[string]any{"image": image})
	}

	if _, ok := named.(reference.Tagged); ok {
		return image, true, nil
	}
	if _, ok := named.(reference.Digested); ok {
		return image, true, nil
	}

	if tag == "" {
		tag = defaults.ImageTag
	}
	tagged, err := reference.WithTag(named, tag)
	if err != nil {
		return "", false, cerrors.WrapWithContext(cerrors.ErrCodeInvalidRequest,
			"invalid image tag", err, map[string]any{"image": image, "tag": tag})
	}
	return reference.FamiliarString(tagged), false, nil
}
