// Package embedded 让各包读取 data/ 下的数据文件
//
// 桌面版传入根目录 embed.go 中的 embed.FS，终端版和测试传入 os.DirFS。
// 读取前必须先调用 Init。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

var dataFS fs.FS

// ErrNotInitialized 在 Init 之前读取
var ErrNotInitialized = errors.New("embedded: Init has not been called")

// Init 设置数据文件系统
func Init(data fs.FS) {
	dataFS = data
}

// ReadFile 读取 data/ 下的文件，接受 "./data/x" 和系统分隔符
func ReadFile(name string) ([]byte, error) {
	if dataFS == nil {
		return nil, ErrNotInitialized
	}
	p := path.Clean(filepath.ToSlash(name))
	if !strings.HasPrefix(p, "data/") {
		return nil, fmt.Errorf("embedded: %q is outside data/", name)
	}
	return fs.ReadFile(dataFS, p)
}
