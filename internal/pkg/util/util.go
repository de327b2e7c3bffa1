package util

import (
	"os"
	"path/filepath"
)

// GetCurrentAbPathByExecutable 获取当前可执行程序所在目录的绝对路径（解析符号链接后）
func GetCurrentAbPathByExecutable() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(exePath))
	if err != nil {
		return "", err
	}
	return dir, nil
}
