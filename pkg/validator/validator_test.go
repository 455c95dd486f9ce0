package validator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/pkg/validator"
)

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	lookup := validator.MapLookup{
		"AgeRequired":        "",
		"AgeRequiredMessage": "{0} is required",
		"AgeRange":           "18-150",
		"AgeRangeMessage":    "{0} must be within {1}",
		"AgeDisplayName":     "Age",
	}
	v := validator.New(lookup)

	t.Run("first failure kind", func(t *testing.T) {
		res := v.Validate("Age", "")
		assert.False(t, res.OK)
		assert.Equal(t, validator.Required, res.Kind)
		assert.Equal(t, "Age is required", res.Message)
	})

	t.Run("second rule", func(t *testing.T) {
		res := v.Validate("Age", "12")
		assert.False(t, res.OK)
		assert.Equal(t, validator.Range, res.Kind)
		assert.Equal(t, "Age must be within 18-150", res.Message)
	})

	t.Run("ok result is zero", func(t *testing.T) {
		assert.Equal(t, validator.Result{OK: true}, v.Validate("Age", "30"))
	})

	t.Run("unknown field is valid", func(t *testing.T) {
		ok, msg := v.IsValid("Nickname", "")
		assert.True(t, ok)
		assert.Empty(t, msg)
	})

	t.Run("package shorthands", func(t *testing.T) {
		assert.Equal(t, v.Validate("Age", "1"), validator.Validate(lookup, "Age", "1"))
		ok, msg := validator.IsValid(lookup, "Age", "1")
		assert.False(t, ok)
		assert.Equal(t, "Age must be within 18-150", msg)
	})

	t.Run("resolve and display name", func(t *testing.T) {
		assert.Len(t, v.Resolve("Age"), 2)
		assert.Equal(t, "Age", v.DisplayName("Age"))
	})
}

func TestValidator_NilLookup(t *testing.T) {
	t.Parallel()

	v := validator.New(nil)
	ok, msg := v.IsValid("Name", "")
	assert.True(t, ok)
	assert.Empty(t, msg)
	assert.Empty(t, v.Rules("Name", validator.FieldOptions{}))
}

func TestValidator_ReflectsStoreChanges(t *testing.T) {
	t.Parallel()

	lookup := validator.MapLookup{}
	v := validator.New(lookup)

	ok, _ := v.IsValid("Name", "")
	assert.True(t, ok)

	lookup["NameRequired"] = ""
	ok, msg := v.IsValid("Name", "")
	assert.False(t, ok)
	assert.Equal(t, "NameRequiredMessage", msg)
}

func TestValidator_Compare(t *testing.T) {
	t.Parallel()

	lookup := validator.MapLookup{
		"ConfirmPasswordCompare":        "Password",
		"ConfirmPasswordCompareMessage": "Passwords must be the same",
	}
	v := validator.New(lookup)

	ok, _ := v.IsValid("ConfirmPassword", "s3cret", validator.WithCompareTo("s3cret"))
	assert.True(t, ok)

	ok, msg := v.IsValid("ConfirmPassword", "s3cret", validator.WithCompareTo("other"))
	assert.False(t, ok)
	assert.Equal(t, "Passwords must be the same", msg)

	t.Run("empty values are equal", func(t *testing.T) {
		ok, _ := v.IsValid("ConfirmPassword", "", validator.WithCompareTo(""))
		assert.True(t, ok)
	})
}

func TestValidator_Diagnostics(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		diags []validator.Diagnostic
	)
	collect := validator.WithDiagnostics(func(d validator.Diagnostic) {
		mu.Lock()
		defer mu.Unlock()
		diags = append(diags, d)
	})

	t.Run("malformed pair", func(t *testing.T) {
		diags = nil
		v := validator.New(validator.MapLookup{"AgeRange": "18"}, collect)
		ok, _ := v.IsValid("Age", "20")
		assert.False(t, ok)
		require.Len(t, diags, 1)
		assert.Equal(t, "Age", diags[0].Field)
		assert.Equal(t, validator.Range, diags[0].Kind)
		assert.Equal(t, "18", diags[0].Argument)
		assert.ErrorIs(t, diags[0].Err, validator.ErrMalformedArgument)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		diags = nil
		v := validator.New(validator.MapLookup{"EmailPattern": "[a-"}, collect)
		ok, _ := v.IsValid("Email", "a@b")
		assert.False(t, ok)
		require.Len(t, diags, 1)
		assert.ErrorIs(t, diags[0].Err, validator.ErrInvalidPattern)
	})

	t.Run("missing compare target", func(t *testing.T) {
		diags = nil
		v := validator.New(validator.MapLookup{"ConfirmCompare": "Password"}, collect)
		ok, _ := v.IsValid("Confirm", "x")
		assert.False(t, ok)
		require.Len(t, diags, 1)
		assert.ErrorIs(t, diags[0].Err, validator.ErrMissingCompareTarget)
	})

	t.Run("well formed rules are silent", func(t *testing.T) {
		diags = nil
		v := validator.New(validator.MapLookup{"AgeRange": "18-20"}, collect)
		ok, _ := v.IsValid("Age", "99")
		assert.False(t, ok)
		assert.Empty(t, diags)
	})

	t.Run("nil hook ignored", func(t *testing.T) {
		v := validator.New(validator.MapLookup{"AgeRange": "18"}, validator.WithDiagnostics(nil))
		ok, _ := v.IsValid("Age", "20")
		assert.False(t, ok)
	})
}

func TestValidator_Concurrent(t *testing.T) {
	t.Parallel()

	v := validator.New(validator.MapLookup{
		"EmailRequired":       "",
		"EmailPattern":        `^[^@\s]+@[^@\s]+$`,
		"EmailPatternMessage": "{0} is invalid",
		"EmailDisplayName":    "Email",
	})

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value := "user@example.com"
			if i%2 == 0 {
				value = "broken"
			}
			ok, msg := v.IsValid("Email", value)
			if i%2 == 0 {
				assert.False(t, ok)
				assert.Equal(t, "Email is invalid", msg)
			} else {
				assert.True(t, ok)
			}
		}(i)
	}
	wg.Wait()
}
