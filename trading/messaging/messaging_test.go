package messaging

import "testing"

func TestChannel_HasMember(t *testing.T) {
	channel := &Channel{Ref: "sendbird_group_channel_1", Members: []string{"user-1", "user-2"}}
	if !channel.HasMember("user-1") {
		t.Error("HasMember rejected an existing member")
	}
	if channel.HasMember("user-3") {
		t.Error("HasMember accepted a non-member")
	}
	if (&Channel{}).HasMember("user-1") {
		t.Error("HasMember accepted a member of an empty channel")
	}
}

func TestPlaceholderRef(t *testing.T) {
	ref := PlaceholderRef("trade-abc")
	if ref != "pending-trade-trade-abc" {
		t.Errorf("PlaceholderRef() = %q", ref)
	}
	if !IsPlaceholder(ref) {
		t.Error("IsPlaceholder rejected its own placeholder")
	}
}

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want bool
	}{
		{name: "placeholder prefix", ref: "pending-trade-abc", want: true},
		{name: "empty ref counts as unassigned", ref: "", want: true},
		{name: "backend channel url", ref: "sendbird_group_channel_42", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPlaceholder(tt.ref); got != tt.want {
				t.Errorf("IsPlaceholder(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}
