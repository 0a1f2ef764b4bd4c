package transaction_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/bankdash/backend/pkg/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TransactionApiTestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *TransactionApiTestSuite) SetupTest() {
	s.app, _ = testutils.NewTestApp()
}

func TestTransactionApiTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionApiTestSuite))
}

func (s *TransactionApiTestSuite) createAccount(balance float64) string {
	body := fmt.Sprintf(`{"accountName":"Test","accountType":"Savings","initialBalance":%g}`, balance)
	resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/accounts", body)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	_, _, data := testutils.DecodeEnvelope(resp)
	return data.(map[string]any)["id"].(string)
}

func (s *TransactionApiTestSuite) record(accountID, txType string, amount float64) map[string]any {
	body := fmt.Sprintf(`{"accountId":%q,"type":%q,"amount":%g}`, accountID, txType, amount)
	resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/transactions", body)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	success, _, data := testutils.DecodeEnvelope(resp)
	s.Require().True(success)
	return data.(map[string]any)
}

func (s *TransactionApiTestSuite) accountBalance(accountID string) float64 {
	resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/api/accounts/"+accountID, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	_, _, data := testutils.DecodeEnvelope(resp)
	return data.(map[string]any)["balance"].(float64)
}

func (s *TransactionApiTestSuite) TestCreateTransactionMutatesBalance() {
	accountID := s.createAccount(5000)

	deposit := s.record(accountID, "deposit", 1000)
	s.Assert().InDelta(6000, deposit["balance"], 0.001, "post-mutation snapshot")
	s.Assert().Equal("Deposit", deposit["description"], "defaults to the type name")
	s.Assert().InDelta(6000, s.accountBalance(accountID), 0.001)

	withdrawal := s.record(accountID, "withdrawal", 500)
	s.Assert().InDelta(5500, withdrawal["balance"], 0.001)
	s.Assert().InDelta(5500, s.accountBalance(accountID), 0.001)
}

func (s *TransactionApiTestSuite) TestCreateTransactionInsufficientFunds() {
	accountID := s.createAccount(100)

	body := fmt.Sprintf(`{"accountId":%q,"type":"withdrawal","amount":101}`, accountID)
	resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/transactions", body)
	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
	success, message, _ := testutils.DecodeEnvelope(resp)
	s.Assert().False(success)
	s.Assert().Equal("Insufficient funds", message)
	s.Assert().InDelta(100, s.accountBalance(accountID), 0.001, "balance untouched")
}

func (s *TransactionApiTestSuite) TestCreateTransactionMissingFields() {
	accountID := s.createAccount(100)
	for _, body := range []string{
		`{}`,
		fmt.Sprintf(`{"accountId":%q,"amount":10}`, accountID),
		fmt.Sprintf(`{"accountId":%q,"type":"deposit"}`, accountID),
		`{"type":"deposit","amount":10}`,
	} {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/transactions", body)
		s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
		_, message, _ := testutils.DecodeEnvelope(resp)
		s.Assert().Equal("Account ID, type, and amount are required", message)
	}
}

func (s *TransactionApiTestSuite) TestCreateTransactionUnknownAccount() {
	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		body := fmt.Sprintf(`{"accountId":%q,"type":"deposit","amount":10}`, id)
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/transactions", body)
		s.Require().Equal(http.StatusNotFound, resp.StatusCode)
		_, message, _ := testutils.DecodeEnvelope(resp)
		s.Assert().Equal("Account not found", message)
	}
}

func (s *TransactionApiTestSuite) TestCreateTransactionInvalidType() {
	accountID := s.createAccount(100)
	body := fmt.Sprintf(`{"accountId":%q,"type":"payment","amount":10}`, accountID)
	resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/transactions", body)
	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *TransactionApiTestSuite) TestListTransactions() {
	a := s.createAccount(1000)
	b := s.createAccount(1000)
	s.record(a, "deposit", 1)
	s.record(b, "deposit", 2)
	s.record(a, "withdrawal", 3)

	s.Run("all transactions in insertion order", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/api/transactions", "")
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		_, _, data := testutils.DecodeEnvelope(resp)
		list, ok := data.([]any)
		s.Require().True(ok)
		s.Require().Len(list, 3)
		s.Assert().InDelta(1, list[0].(map[string]any)["amount"], 0.001)
		s.Assert().InDelta(3, list[2].(map[string]any)["amount"], 0.001)
	})

	s.Run("filter by account", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/api/transactions?accountId="+a, "")
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		_, _, data := testutils.DecodeEnvelope(resp)
		list := data.([]any)
		s.Require().Len(list, 2)
		for _, item := range list {
			s.Assert().Equal(a, item.(map[string]any)["accountId"])
		}
	})

	s.Run("malformed filter yields an empty list", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/api/transactions?accountId=nope", "")
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		success, _, data := testutils.DecodeEnvelope(resp)
		s.Assert().True(success)
		list, ok := data.([]any)
		s.Require().True(ok)
		s.Assert().Empty(list)
	})
}

func (s *TransactionApiTestSuite) TestGetTransaction() {
	a := s.createAccount(100)
	created := s.record(a, "deposit", 10)

	resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/api/transactions/"+created["id"].(string), "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	_, _, data := testutils.DecodeEnvelope(resp)
	s.Assert().Equal(created["id"], data.(map[string]any)["id"])
}

func (s *TransactionApiTestSuite) TestGetTransactionNotFound() {
	for _, id := range []string{uuid.NewString(), "junk"} {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/api/transactions/"+id, "")
		s.Require().Equal(http.StatusNotFound, resp.StatusCode)
		_, message, _ := testutils.DecodeEnvelope(resp)
		s.Assert().Equal("Transaction not found", message)
	}
}

func (s *TransactionApiTestSuite) TestUpdateTransactionDescription() {
	a := s.createAccount(100)
	created := s.record(a, "deposit", 10)

	resp := testutils.MakeRequest(
		s.app,
		fiber.MethodPatch,
		"/api/transactions/"+created["id"].(string),
		`{"description":"Book refund"}`,
	)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	_, _, data := testutils.DecodeEnvelope(resp)
	tx := data.(map[string]any)
	s.Assert().Equal("Book refund", tx["description"])
	s.Assert().InDelta(10, tx["amount"], 0.001, "amount immutable")
	s.Assert().InDelta(110, s.accountBalance(a), 0.001, "no balance effect")
}

func (s *TransactionApiTestSuite) TestDeleteTransactionReversesBalance() {
	a := s.createAccount(5000)
	s.record(a, "deposit", 1000)
	withdrawal := s.record(a, "withdrawal", 500)
	s.Require().InDelta(5500, s.accountBalance(a), 0.001)

	resp := testutils.MakeRequest(s.app, fiber.MethodDelete, "/api/transactions/"+withdrawal["id"].(string), "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	success, message, _ := testutils.DecodeEnvelope(resp)
	s.Assert().True(success)
	s.Assert().Equal("Transaction deleted", message)

	s.Assert().InDelta(6000, s.accountBalance(a), 0.001, "withdrawal reversed")

	resp = testutils.MakeRequest(s.app, fiber.MethodGet, "/api/transactions/"+withdrawal["id"].(string), "")
	s.Assert().Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *TransactionApiTestSuite) TestDeleteTransactionNotFound() {
	resp := testutils.MakeRequest(s.app, fiber.MethodDelete, "/api/transactions/"+uuid.NewString(), "")
	s.Require().Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *TransactionApiTestSuite) TestDeleteAccountCascadesTransactions() {
	a := s.createAccount(100)
	tx := s.record(a, "deposit", 10)

	resp := testutils.MakeRequest(s.app, fiber.MethodDelete, "/api/accounts/"+a, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp = testutils.MakeRequest(s.app, fiber.MethodGet, "/api/transactions/"+tx["id"].(string), "")
	s.Assert().Equal(http.StatusNotFound, resp.StatusCode)
}
