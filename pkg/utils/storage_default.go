//go:build !android

package utils

// PrepareSettingsStorage 非 Android 平台由 gdata 自行创建目录
func PrepareSettingsStorage(appName string) error {
	return nil
}

// SettingsStoragePath 非 Android 平台返回空字符串
func SettingsStoragePath(appName string) string {
	return ""
}
