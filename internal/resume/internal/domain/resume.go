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

package domain

import (
	"io"
	"path/filepath"
	"strings"
)

// MaxFileSize 简历和 logo 都不能超过 5MB
const MaxFileSize int64 = 5 << 20

type Resume struct {
	ID           int64
	Uid          int64
	OriginalName string
	// StoredName 落盘之后的文件名，对外的 URL 由它拼出来
	StoredName string
	MimeType   string
	Size       int64
	Ctime      int64
}

// File 上传上来的文件
type File struct {
	Name   string
	Size   int64
	Reader io.Reader
}

func (f File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}
