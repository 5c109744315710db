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
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// Biz 每种业务一个独立的序列，biz 编码在 id 里面
type Biz uint

const (
	BizJob Biz = iota
	BizApplication
	BizResume
	bizCount
)

const (
	maxNode uint = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrUnknownBiz = errors.New("未知的业务")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit Biz   | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

//go:generate mockgen -source=./idgen.go -destination=./mocks/idgen.mock.go -package=idgenmocks -typed Generator
type Generator interface {
	Next(biz Biz) (int64, error)
}

type SnowflakeGenerator struct {
	nodes syncx.Map[Biz, *snowflake.Node]
}

// NewSnowflakeGenerator node 是部署节点的编号，从 0 开始，最多到 31
func NewSnowflakeGenerator(nodeID uint) (*SnowflakeGenerator, error) {
	if nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	g := &SnowflakeGenerator{}
	for biz := Biz(0); biz < bizCount; biz++ {
		n, err := snowflake.NewNode(int64(uint(biz)<<5 | nodeID))
		if err != nil {
			return nil, err
		}
		g.nodes.Store(biz, n)
	}
	return g, nil
}

func (g *SnowflakeGenerator) Next(biz Biz) (int64, error) {
	n, ok := g.nodes.Load(biz)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownBiz, biz)
	}
	return n.Generate().Int64(), nil
}

// BizOf 从 id 里面解析出业务
func BizOf(id int64) Biz {
	return Biz(snowflake.ID(id).Node() >> 5)
}
