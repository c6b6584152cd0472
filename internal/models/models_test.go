package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    BuildingSpec
		wantErr string
	}{
		{"valid cafe", BuildingSpec{Kind: KindCafe, Name: "C", Floors: 1}, ""},
		{"cafe with elevator", BuildingSpec{Kind: KindCafe, Name: "C", Floors: 1, HasElevator: true}, "windy"},
		{"cafe with residents", BuildingSpec{Kind: KindCafe, Name: "C", Floors: 1, Residents: []string{"A"}}, "mieszkańców"},
		{"house with books", BuildingSpec{Kind: KindHouse, Name: "H", Floors: 2, Books: []Book{{Title: "X"}}}, "książek"},
		{"library without title", BuildingSpec{Kind: KindLibrary, Name: "L", Floors: 2, Books: []Book{{Author: "Y"}}}, "tytuł"},
		{"zero floors", BuildingSpec{Kind: KindHouse, Name: "H", Floors: 0}, "piętro"},
		{"unknown kind", BuildingSpec{Kind: "garage", Name: "G", Floors: 1}, "nieznany typ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCampusValidate(t *testing.T) {
	campus := Campus{Buildings: []BuildingSpec{
		{Kind: " Library ", Name: "Neilson", Floors: 4},
		{Kind: KindHouse, Name: "Neilson", Floors: 2},
	}}

	err := campus.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zduplikowana")
	assert.Equal(t, KindLibrary, campus.Buildings[0].Kind)
	assert.Equal(t, 1, campus.CountByKind(KindLibrary))
}

func TestBookIsAvailable(t *testing.T) {
	assert.True(t, (&Book{Title: "X"}).IsAvailable())
	assert.False(t, (&Book{Title: "X", CheckedOut: true}).IsAvailable())
}
