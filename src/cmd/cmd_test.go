package cmd

import (
	"testing"

	"rsatoolkit/src/types"
)

func TestEncryptRejectsMissingHexPrefix(t *testing.T) {
	err := Encrypt([]string{"123", "0xAB", "0xCD"})
	if err == nil || !types.IsValidation(err) {
		t.Errorf("Encrypt with missing 0x prefix: got %v, want ValidationError", err)
	}
}

func TestEncryptRejectsWrongArity(t *testing.T) {
	err := Encrypt([]string{"0x11", "0x22"})
	if err == nil || !types.IsValidation(err) {
		t.Errorf("Encrypt with 2 args: got %v, want ValidationError", err)
	}
}

func TestGenerateRejectsTooSmallModulus(t *testing.T) {
	err := Generate([]string{"6"})
	if err == nil || !types.IsValidation(err) {
		t.Errorf("Generate(6): got %v, want ValidationError", err)
	}
}

func TestGenerateRejectsMissingArgument(t *testing.T) {
	err := Generate(nil)
	if err == nil || !types.IsValidation(err) {
		t.Errorf("Generate(): got %v, want ValidationError", err)
	}
}

func TestGenerateRejectsNonNumericSize(t *testing.T) {
	err := Generate([]string{"thirty-two"})
	if err == nil || !types.IsValidation(err) {
		t.Errorf("Generate(\"thirty-two\"): got %v, want ValidationError", err)
	}
}

func TestDecryptRejectsZeroModulus(t *testing.T) {
	err := Decrypt([]string{"0x03", "0x0", "0x05"})
	if err == nil || !types.IsValidation(err) {
		t.Errorf("Decrypt with N=0x0: got %v, want ValidationError", err)
	}
}

func TestBreakRejectsWrongArity(t *testing.T) {
	err := Break([]string{"0x11", "0x22", "0x33", "0x44"})
	if err == nil || !types.IsValidation(err) {
		t.Errorf("Break with 4 args: got %v, want ValidationError", err)
	}
}

func TestDispatchRejectsUnknownMode(t *testing.T) {
	err := Dispatch([]string{"-q", "7"})
	if err == nil || !types.IsValidation(err) {
		t.Errorf("Dispatch(-q 7): got %v, want ValidationError", err)
	}
}

func TestDispatchRejectsNoArguments(t *testing.T) {
	err := Dispatch(nil)
	if err == nil || !types.IsValidation(err) {
		t.Errorf("Dispatch(): got %v, want ValidationError", err)
	}
}

func TestDispatchHelpReturnsNoError(t *testing.T) {
	if err := Dispatch([]string{"-h"}); err != nil {
		t.Errorf("Dispatch(-h): got %v, want nil", err)
	}
}

func TestInspectRejectsWrongArity(t *testing.T) {
	err := Inspect(nil)
	if err == nil || !types.IsValidation(err) {
		t.Errorf("Inspect(): got %v, want ValidationError", err)
	}
}
