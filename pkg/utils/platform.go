//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时桌面端按移动端处理输入（本地调试触控操作）
const MobileEmulateEnv = "AMMODILLO_MOBILE_EMULATE"

// IsMobile 是否按移动端运行
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
