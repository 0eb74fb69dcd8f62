package leadcapture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phbpx/leadcapture"
)

func validLead() leadcapture.NewLead {
	return leadcapture.NewLead{
		Name:        "Dr. Lana Mann",
		Email:       "lana@example.com",
		Mobile:      "+63-946-922-8301",
		PostCode:    "1588",
		ServiceType: []leadcapture.ServiceType{leadcapture.ServiceDelivery, leadcapture.ServicePayment},
	}
}

func TestValidatorAcceptsValidLead(t *testing.T) {
	v := leadcapture.NewValidator("")

	require.NoError(t, v.Validate(validLead()))

	national := validLead()
	national.Mobile = "0946 922 8301"
	require.NoError(t, v.Validate(national), "national format should parse with the default region")
}

func TestValidatorRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(nl *leadcapture.NewLead)
		field   string
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(nl *leadcapture.NewLead) { nl.Name = "" },
			field:   "name",
			message: "name should not be empty",
		},
		{
			name:    "missing email",
			mutate:  func(nl *leadcapture.NewLead) { nl.Email = "" },
			field:   "email",
			message: "email should not be empty",
		},
		{
			name:    "malformed email",
			mutate:  func(nl *leadcapture.NewLead) { nl.Email = "lana-at-example.com" },
			field:   "email",
			message: "email must be an email",
		},
		{
			name:    "missing mobile",
			mutate:  func(nl *leadcapture.NewLead) { nl.Mobile = "" },
			field:   "mobile",
			message: "mobile should not be empty",
		},
		{
			name:    "malformed mobile",
			mutate:  func(nl *leadcapture.NewLead) { nl.Mobile = "12345" },
			field:   "mobile",
			message: "invalid phone number",
		},
		{
			name:    "missing post code",
			mutate:  func(nl *leadcapture.NewLead) { nl.PostCode = "" },
			field:   "postCode",
			message: "postCode should not be empty",
		},
		{
			name:    "no service type",
			mutate:  func(nl *leadcapture.NewLead) { nl.ServiceType = nil },
			field:   "serviceType",
			message: "at least one service type must be selected",
		},
		{
			name:    "empty service type list",
			mutate:  func(nl *leadcapture.NewLead) { nl.ServiceType = []leadcapture.ServiceType{} },
			field:   "serviceType",
			message: "at least one service type must be selected",
		},
		{
			name: "unknown service type",
			mutate: func(nl *leadcapture.NewLead) {
				nl.ServiceType = []leadcapture.ServiceType{leadcapture.ServicePickup, "TELEPORT"}
			},
			field:   "serviceType",
			message: "each value in serviceType must be one of the following values: DELIVERY, PICKUP, PAYMENT",
		},
	}

	v := leadcapture.NewValidator("PH")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nl := validLead()
			tt.mutate(&nl)

			err := v.Validate(nl)
			require.Error(t, err)

			var verr *leadcapture.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, leadcapture.KindValidation, verr.Kind)
			assert.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.message, verr.Fields[tt.field])
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestValidatorReportsEveryField(t *testing.T) {
	v := leadcapture.NewValidator("PH")

	err := v.Validate(leadcapture.NewLead{})

	var verr *leadcapture.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"name":        "name should not be empty",
		"email":       "email should not be empty",
		"mobile":      "mobile should not be empty",
		"postCode":    "postCode should not be empty",
		"serviceType": "at least one service type must be selected",
	}, verr.Fields)
	assert.Equal(t, "name should not be empty; email should not be empty; mobile should not be empty; "+
		"postCode should not be empty; at least one service type must be selected", verr.Message)
}

func TestParseServiceType(t *testing.T) {
	for _, st := range leadcapture.ServiceTypes() {
		got, err := leadcapture.ParseServiceType(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := leadcapture.ParseServiceType("delivery")
	assert.Error(t, err, "service types are case sensitive")
}

func TestDistinctServiceTypes(t *testing.T) {
	nl := leadcapture.NewLead{ServiceType: []leadcapture.ServiceType{
		leadcapture.ServicePayment,
		leadcapture.ServiceDelivery,
		leadcapture.ServicePayment,
	}}

	assert.Equal(t, []leadcapture.ServiceType{leadcapture.ServicePayment, leadcapture.ServiceDelivery}, nl.DistinctServiceTypes())
}
