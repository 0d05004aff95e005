package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/error/validation"
)

func newMember(codeID string) *models.Member {
	return &models.Member{
		FullName: "Ada Obi",
		CodeID:   codeID,
		Email:    "ada@example.com",
		Phone:    "08012345678",
	}
}

func TestCreateMemberDefaults(t *testing.T) {
	db := newTestDB(t)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewMemberServiceWithClock(db, newTestConfig(), func() time.Time { return fixed })

	member := newMember("MEM-0001")
	require.NoError(t, svc.CreateMember(member))

	assert.Equal(t, models.StageOne, member.Stage)
	assert.True(t, member.RegistrationDate.Equal(fixed))

	got, err := svc.GetMemberByCodeID("MEM-0001")
	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", got.FullName)
	assert.Equal(t, models.StageOne, got.Stage)
}

func TestCreateMemberRequiredFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db, newTestConfig())

	err := svc.CreateMember(&models.Member{})
	require.Error(t, err)

	verrs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "code_id")
	assert.Contains(t, verrs, "email")
	assert.Contains(t, verrs, "phone")

	// Nothing was persisted
	var count int64
	require.NoError(t, db.Model(&models.Member{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateMemberMalformedEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db, newTestConfig())

	member := newMember("MEM-0001")
	member.Email = "not-an-email"
	err := svc.CreateMember(member)
	require.Error(t, err)

	verrs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "email")

	var count int64
	require.NoError(t, db.Model(&models.Member{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateMemberInvalidNextOfKinEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db, newTestConfig())

	member := newMember("MEM-0001")
	member.NextOfKinEmail = "broken@"
	err := svc.CreateMember(member)
	require.Error(t, err)

	verrs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "next_of_kin_email")
}

func TestCreateMemberDuplicateCodeID(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db, newTestConfig())

	require.NoError(t, svc.CreateMember(newMember("MEM-0001")))

	dup := newMember("MEM-0001")
	dup.Email = "other@example.com"
	err := svc.CreateMember(dup)
	require.Error(t, err)

	verrs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "a member with this code id already exists", verrs["code_id"])

	// Exactly one row with that code_id survives
	var count int64
	require.NoError(t, db.Model(&models.Member{}).Where("code_id = ?", "MEM-0001").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateMemberInvalidStageAndBank(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db, newTestConfig())

	member := newMember("MEM-0001")
	member.Stage = "9"
	member.BankName = "Atlantis Savings"
	err := svc.CreateMember(member)
	require.Error(t, err)

	verrs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "stage")
	assert.Contains(t, verrs, "bank_name")
}

func TestGetAllMembersOrdering(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// Create members with interleaved registration dates
	offsets := map[string]time.Duration{
		"MEM-0001": 2 * time.Hour,
		"MEM-0002": 5 * time.Hour,
		"MEM-0003": 1 * time.Hour,
	}
	for codeID, offset := range offsets {
		current := base.Add(offset)
		svc := NewMemberServiceWithClock(db, newTestConfig(), func() time.Time { return current })
		m := newMember(codeID)
		m.Email = codeID + "@example.com"
		require.NoError(t, svc.CreateMember(m))
	}

	svc := NewMemberService(db, newTestConfig())
	members, err := svc.GetAllMembers()
	require.NoError(t, err)
	require.Len(t, members, 3)

	// Most recently registered first
	assert.Equal(t, "MEM-0002", members[0].CodeID)
	assert.Equal(t, "MEM-0001", members[1].CodeID)
	assert.Equal(t, "MEM-0003", members[2].CodeID)
}

func TestGetMemberNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db, newTestConfig())

	_, err := svc.GetMemberByCodeID("MEM-MISSING")
	assert.True(t, errors.Is(err, ErrMemberNotFound))
}

func TestUpdateMemberPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db, newTestConfig())

	require.NoError(t, svc.CreateMember(newMember("MEM-0001")))

	updated, err := svc.UpdateMember("MEM-0001", map[string]interface{}{
		"occupation":   "Engineer",
		"stage":        "3",
		"no_referrals": 7,
	})
	require.NoError(t, err)
	assert.Equal(t, "Engineer", updated.Occupation)
	assert.Equal(t, "3", updated.Stage)
	assert.Equal(t, 7, updated.NoReferrals)
	// Untouched fields survive
	assert.Equal(t, "Ada Obi", updated.FullName)
}

func TestUpdateMemberInvalidEmailMutatesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db, newTestConfig())

	require.NoError(t, svc.CreateMember(newMember("MEM-0001")))

	_, err := svc.UpdateMember("MEM-0001", map[string]interface{}{
		"email":      "broken",
		"occupation": "Engineer",
	})
	require.Error(t, err)
	_, ok := validation.AsErrors(err)
	assert.True(t, ok)

	got, err := svc.GetMemberByCodeID("MEM-0001")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Empty(t, got.Occupation)
}

func TestUpdateMemberChangeCodeID(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db, newTestConfig())

	require.NoError(t, svc.CreateMember(newMember("MEM-0001")))
	other := newMember("MEM-0002")
	other.Email = "other@example.com"
	require.NoError(t, svc.CreateMember(other))

	// Renaming onto an existing code_id is rejected
	_, err := svc.UpdateMember("MEM-0001", map[string]interface{}{"code_id": "MEM-0002"})
	require.Error(t, err)
	verrs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "code_id")

	// Renaming to a free code_id works and lookups follow the new key
	updated, err := svc.UpdateMember("MEM-0001", map[string]interface{}{"code_id": "MEM-0009"})
	require.NoError(t, err)
	assert.Equal(t, "MEM-0009", updated.CodeID)

	_, err = svc.GetMemberByCodeID("MEM-0001")
	assert.True(t, errors.Is(err, ErrMemberNotFound))
}

func TestDeleteMember(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db, newTestConfig())

	require.NoError(t, svc.CreateMember(newMember("MEM-0001")))
	require.NoError(t, svc.DeleteMember("MEM-0001"))

	_, err := svc.GetMemberByCodeID("MEM-0001")
	assert.True(t, errors.Is(err, ErrMemberNotFound))

	// Deleting again reports not found
	err = svc.DeleteMember("MEM-0001")
	assert.True(t, errors.Is(err, ErrMemberNotFound))
}
