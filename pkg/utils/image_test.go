package utils

import (
	"strings"
	"testing"
)

func TestAllowedImage(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		filename    string
		want        bool
	}{
		{"标准 jpeg", "image/jpeg", "photo.jpg", true},
		{"带参数的 MIME", "image/png; charset=binary", "photo.png", true},
		{"MIME 不可靠但扩展名正确", "application/octet-stream", "IMG_0001.HEIC", true},
		{"MIME 正确但扩展名缺失", "image/webp", "download", true},
		{"两者都不对", "text/plain", "notes.txt", false},
		{"冒充图片的可执行文件", "application/x-msdownload", "virus.exe", false},
		{"大小写混合 MIME", "IMAGE/JPEG", "x.bin", true},
	}
	for _, tc := range cases {
		if got := AllowedImage(tc.contentType, tc.filename); got != tc.want {
			t.Errorf("%s: AllowedImage(%q, %q) = %v，期望 %v",
				tc.name, tc.contentType, tc.filename, got, tc.want)
		}
	}
}

func TestUniqueImageName(t *testing.T) {
	name := UniqueImageName("My Photo.PNG")
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("扩展名应保留并转小写: %s", name)
	}
	if strings.Contains(name, "My Photo") {
		t.Errorf("不应泄露原始文件名: %s", name)
	}

	// 无扩展名时兜底 .jpg
	if name := UniqueImageName("download"); !strings.HasSuffix(name, ".jpg") {
		t.Errorf("缺省扩展名应为 .jpg: %s", name)
	}

	// 连续生成不碰撞
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := UniqueImageName("a.jpg")
		if seen[n] {
			t.Fatalf("文件名碰撞: %s", n)
		}
		seen[n] = true
	}
}
