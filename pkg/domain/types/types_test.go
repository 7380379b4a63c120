package types_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/types"
)

func TestNormalizeHandle(t *testing.T) {
	gt.Value(t, types.NormalizeHandle("  OctoCat ")).Equal(types.Handle("octocat"))
	gt.Value(t, types.NormalizeHandle("ALICE")).Equal(types.Handle("alice"))
}

func TestHandleValidate(t *testing.T) {
	valid := []string{"a", "octocat", "a-b", "user1234", strings.Repeat("a", 39)}
	for _, s := range valid {
		t.Run("valid_"+s, func(t *testing.T) {
			gt.NoError(t, types.Handle(s).Validate())
		})
	}

	invalid := []string{"", "-lead", "trail-", "dou--ble", "with space", "Upper", "emoji😀", strings.Repeat("a", 40)}
	for _, s := range invalid {
		t.Run("invalid_"+s, func(t *testing.T) {
			gt.Value(t, types.Handle(s).Validate()).NotNil()
		})
	}
}

func TestImageSize(t *testing.T) {
	gt.NoError(t, types.ImageSize("1792x1024").Validate())
	gt.NoError(t, types.ImageSize("").Validate())
	gt.Value(t, types.ImageSize("huge").Validate()).NotNil()
	gt.Value(t, types.ImageSize("x100").Validate()).NotNil()
	gt.Value(t, types.ImageSize("100x").Validate()).NotNil()

	gt.Value(t, types.ImageSize("").OrDefault()).Equal(types.DefaultImageSize)
	gt.Value(t, types.ImageSize("512x512").OrDefault()).Equal(types.ImageSize("512x512"))
}

func TestNewRecordID(t *testing.T) {
	a := types.NewRecordID()
	b := types.NewRecordID()
	gt.String(t, a.String()).NotEqual("")
	gt.Value(t, a == b).Equal(false)
}
