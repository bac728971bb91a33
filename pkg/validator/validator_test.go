package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	errs := ValidateRegister("jiwon", "jiwon@example.com", "Str0ngPass")
	assert.False(t, errs.HasErrors())

	errs = ValidateRegister("", "not-an-email", "short")
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	errs = ValidateRegister("bad name!", "jiwon@example.com", "Str0ngPass")
	assert.Contains(t, errs, "username")
}

func TestValidatePerformance(t *testing.T) {
	errs := ValidatePerformance("2024-06-15", "예술의전당 콘서트홀", "라포 시닉", "서울 필하모닉", "바이올린", "1st Violin", []string{"1부: 브람스"})
	assert.False(t, errs.HasErrors())

	errs = ValidatePerformance("", "", "", "", "", "", nil)
	for _, field := range []string{"date", "venue", "conductor", "ensemble_name", "instrument", "sub_part", "pieces"} {
		assert.Contains(t, errs, field)
	}

	errs = ValidatePerformance("15-06-2024", "v", "c", "e", "i", "s", []string{"x"})
	assert.Contains(t, errs, "date")
}
