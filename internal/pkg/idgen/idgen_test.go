// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnowflakeGenerator(t *testing.T) {
	_, err := NewSnowflakeGenerator(32)
	assert.ErrorIs(t, err, ErrExceedNode)

	_, err = NewSnowflakeGenerator(31)
	assert.NoError(t, err)
}

func TestSnowflakeGenerator_Next(t *testing.T) {
	g, err := NewSnowflakeGenerator(1)
	require.NoError(t, err)
	seen := make(map[int64]struct{}, 30000)
	for _, biz := range []Biz{BizJob, BizApplication, BizResume} {
		for i := 0; i < 10000; i++ {
			id, err := g.Next(biz)
			require.NoError(t, err)
			_, ok := seen[id]
			require.False(t, ok)
			seen[id] = struct{}{}
			require.Equal(t, biz, BizOf(id))
		}
	}

	_, err = g.Next(bizCount)
	assert.ErrorIs(t, err, ErrUnknownBiz)
}
