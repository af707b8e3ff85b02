package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("KAFE_TEST_KEY", "özel-değer")

	if got := getEnv("KAFE_TEST_KEY", "varsayılan"); got != "özel-değer" {
		t.Errorf("ortam değişkeni okunmalıydı, %q geldi", got)
	}
	if got := getEnv("KAFE_TEST_MISSING", "varsayılan"); got != "varsayılan" {
		t.Errorf("varsayılan dönmeliydi, %q geldi", got)
	}

	t.Setenv("KAFE_TEST_EMPTY", "")
	if got := getEnv("KAFE_TEST_EMPTY", "varsayılan"); got != "varsayılan" {
		t.Errorf("boş değişken varsayılanı döndürmeliydi, %q geldi", got)
	}
}
