package dto

import (
	"encoding/json"
	"testing"
)

func TestCreateBlockRequest_OrderIndexDefault(t *testing.T) {
	var req CreateBlockRequest
	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b := req.ToModel(); b.OrderIndex != 1 {
		t.Errorf("omitted order_index = %d, want 1", b.OrderIndex)
	}

	if err := json.Unmarshal([]byte(`{"order_index": 5}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b := req.ToModel(); b.OrderIndex != 5 {
		t.Errorf("explicit order_index = %d, want 5", b.OrderIndex)
	}

	if err := json.Unmarshal([]byte(`{"order_index": 0}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b := req.ToModel(); b.OrderIndex != 0 {
		t.Errorf("explicit zero order_index = %d, want 0 stored as given", b.OrderIndex)
	}
}

// An absent key must decode to nil (leave untouched) while an explicit
// empty string decodes to a present pointer (write the empty value).
func TestUpdateCampaignRequest_AbsentVsEmpty(t *testing.T) {
	var req UpdateCampaignRequest
	if err := json.Unmarshal([]byte(`{"name":"Renamed"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	patch := req.ToPatch()
	if patch.Name == nil || *patch.Name != "Renamed" {
		t.Errorf("name should be present")
	}
	if patch.Description != nil {
		t.Errorf("absent description should map to nil")
	}

	req = UpdateCampaignRequest{}
	if err := json.Unmarshal([]byte(`{"description":""}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	patch = req.ToPatch()
	if patch.Description == nil || *patch.Description != "" {
		t.Errorf("explicit empty description should be a present pointer")
	}
	if patch.IsEmpty() {
		t.Errorf("patch with one field should not be empty")
	}
}

func TestUpdateRequests_EmptyPatchDetection(t *testing.T) {
	if !(UpdateCampaignRequest{}).ToPatch().IsEmpty() {
		t.Error("empty campaign request should yield empty patch")
	}
	if !(UpdateIssueRequest{}).ToPatch().IsEmpty() {
		t.Error("empty issue request should yield empty patch")
	}
	if !(UpdateBlockRequest{}).ToPatch().IsEmpty() {
		t.Error("empty block request should yield empty patch")
	}

	n := 3
	req := UpdateBlockRequest{OrderIndex: &n}
	if req.ToPatch().IsEmpty() {
		t.Error("block patch with order_index should not be empty")
	}
}
