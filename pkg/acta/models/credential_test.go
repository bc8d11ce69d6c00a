package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/acta-build/acta-go/pkg/acta/models"
)

type CredentialSuite struct {
	suite.Suite
}

func TestCredentialSuite(t *testing.T) {
	suite.Run(t, new(CredentialSuite))
}

func (s *CredentialSuite) TestPresignedWireShape() {
	body, err := json.Marshal(models.CreateCredentialRequest(models.PresignedCredential{
		SignedXDR: "X",
		VcID:      "v1",
	}))
	s.Require().NoError(err)
	s.JSONEq(`{"signedXdr":"X","vcId":"v1"}`, string(body))
}

func (s *CredentialSuite) TestServerIssuedWireShape() {
	s.Run("omits didUri when empty", func() {
		body, err := json.Marshal(models.ServerIssuedCredential{
			Owner:           "GOWNER",
			VcID:            "v2",
			VcData:          `{"name":"alice"}`,
			VaultContractID: "CVAULT",
		})
		s.Require().NoError(err)
		s.JSONEq(`{"owner":"GOWNER","vcId":"v2","vcData":"{\"name\":\"alice\"}","vaultContractId":"CVAULT"}`, string(body))
	})

	s.Run("includes didUri when set", func() {
		body, err := json.Marshal(models.ServerIssuedCredential{
			Owner:           "GOWNER",
			VcID:            "v2",
			VcData:          "data",
			VaultContractID: "CVAULT",
			DIDURI:          "did:pkh:stellar:GOWNER",
		})
		s.Require().NoError(err)
		s.Contains(string(body), `"didUri":"did:pkh:stellar:GOWNER"`)
	})
}

func (s *CredentialSuite) TestMatchCredential() {
	describe := func(req models.CreateCredentialRequest) string {
		return models.MatchCredential(req,
			func(p models.PresignedCredential) string { return "presigned:" + string(p.VcID) },
			func(si models.ServerIssuedCredential) string { return "server:" + si.Owner },
		)
	}

	cases := []struct {
		name string
		req  models.CreateCredentialRequest
		want string
	}{
		{name: "presigned value", req: models.PresignedCredential{VcID: "v1"}, want: "presigned:v1"},
		{name: "presigned pointer", req: &models.PresignedCredential{VcID: "v9"}, want: "presigned:v9"},
		{name: "server issued value", req: models.ServerIssuedCredential{Owner: "O"}, want: "server:O"},
		{name: "server issued pointer", req: &models.ServerIssuedCredential{Owner: "P"}, want: "server:P"},
		{name: "nil request", req: nil, want: ""},
		{name: "nil presigned pointer", req: (*models.PresignedCredential)(nil), want: ""},
		{name: "nil server issued pointer", req: (*models.ServerIssuedCredential)(nil), want: ""},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, describe(tc.req))
		})
	}
}

func (s *CredentialSuite) TestIsNilCredential() {
	s.True(models.IsNilCredential(nil))
	s.True(models.IsNilCredential((*models.PresignedCredential)(nil)))
	s.True(models.IsNilCredential((*models.ServerIssuedCredential)(nil)))
	s.False(models.IsNilCredential(models.PresignedCredential{}))
	s.False(models.IsNilCredential(&models.ServerIssuedCredential{}))
	s.Equal(models.VcID(""), models.CredentialID((*models.PresignedCredential)(nil)))
}

func (s *CredentialSuite) TestVariantAndID() {
	presigned := models.PresignedCredential{SignedXDR: "X", VcID: "v1"}
	issued := models.ServerIssuedCredential{VcID: "v2"}

	s.Equal(models.VariantPresigned, presigned.Variant())
	s.Equal(models.VariantServerIssued, issued.Variant())
	s.Equal(models.VcID("v1"), models.CredentialID(presigned))
	s.Equal(models.VcID("v2"), models.CredentialID(issued))
}

func (s *CredentialSuite) TestVcIDs() {
	s.Run("generated ids are prefixed and unique", func() {
		a, b := models.NewVcID(), models.NewVcID()
		s.NotEqual(a, b)
		s.Contains(a.String(), "vc_")
	})

	s.Run("parse rejects blank", func() {
		_, err := models.ParseVcID("   ")
		s.Error(err)
	})

	s.Run("parse keeps value verbatim", func() {
		id, err := models.ParseVcID("urn:uuid:1234")
		s.Require().NoError(err)
		s.Equal(models.VcID("urn:uuid:1234"), id)
		s.False(id.IsNil())
	})
}
