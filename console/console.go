// Package console is the interactive menu in front of the account and
// transaction services. It owns the login session; the services do not.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"ubank/account"
	"ubank/transactions"
)

type AccountService interface {
	Register(accountNo int, password string) (*account.Account, error)
	Login(accountNo int, password string) (*account.Account, error)
	GetAccount(accountNo int) (*account.Account, error)
	Deposit(accountNo int, amount int64) (*account.Account, error)
	Withdraw(accountNo int, amount int64) (*account.Account, error)
}

type TransactionService interface {
	GetTransactions(accountNo int) []transactions.Transaction
}

// maxLineLength bounds a single input line, terminator included. Longer
// lines are discarded and reported as invalid input.
const maxLineLength = 4096

type Console struct {
	in           *bufio.Reader
	out          io.Writer
	accounts     AccountService
	transactions TransactionService
	logger       *zap.Logger

	loggedIn  bool
	accountNo int

	// err is the read error that ends the session, io.EOF included.
	err error
}

func New(in io.Reader, out io.Writer, accounts AccountService, txs TransactionService, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		in:           bufio.NewReader(in),
		out:          out,
		accounts:     accounts,
		transactions: txs,
		logger:       logger.Named("console"),
	}
}

// Run serves the menu until the user exits or input ends.
func (c *Console) Run() error {
	c.banner("U-Bank")
	for {
		fmt.Fprintln(c.out, "1. Login")
		fmt.Fprintln(c.out, "2. Register")
		fmt.Fprintln(c.out, "3. Account")
		fmt.Fprintln(c.out, "4. Deposit")
		fmt.Fprintln(c.out, "5. Withdraw")
		fmt.Fprintln(c.out, "6. Account Statement")
		fmt.Fprintln(c.out, "7. Logout")
		fmt.Fprintln(c.out, "8. Exit")

		choice, ok := c.prompt("\nPlease select an option: ")
		if !ok {
			if c.err == nil {
				continue
			}
			if errors.Is(c.err, io.EOF) {
				return nil
			}
			return c.err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.login()
		case "2":
			c.register()
		case "3":
			c.showAccount()
		case "4":
			c.deposit()
		case "5":
			c.withdraw()
		case "6":
			c.statement()
		case "7":
			c.logout()
		case "8":
			return nil
		default:
			fmt.Fprintln(c.out, "Error")
		}
	}
}

func (c *Console) login() {
	if c.loggedIn {
		fmt.Fprintln(c.out, "You are already logged in.")
		return
	}
	c.banner("Login")

	accountNo, password, ok := c.readCredentials()
	if !ok {
		return
	}
	if _, err := c.accounts.Login(accountNo, password); err != nil {
		c.respondWithError("", err)
		return
	}
	c.startSession(accountNo)
}

func (c *Console) register() {
	if c.loggedIn {
		fmt.Fprintln(c.out, "You are already logged in.")
		return
	}
	c.banner("Register")

	accountNo, password, ok := c.readCredentials()
	if !ok {
		return
	}
	if _, err := c.accounts.Register(accountNo, password); err != nil {
		c.respondWithError("", err)
		return
	}
	c.startSession(accountNo)
}

func (c *Console) showAccount() {
	if !c.requireSession() {
		return
	}
	c.banner("Account")

	acc, err := c.accounts.GetAccount(c.accountNo)
	if err != nil {
		c.respondWithError("", err)
		return
	}
	fmt.Fprintln(c.out, acc)
}

func (c *Console) deposit() {
	if !c.requireSession() {
		return
	}
	c.banner("Deposit")

	amount, ok := c.readAmount()
	if !ok {
		return
	}
	if _, err := c.accounts.Deposit(c.accountNo, amount); err != nil {
		c.respondWithError("Could not deposit into account.", err)
		return
	}
	fmt.Fprintln(c.out, "Money successfully deposited into account.")
}

func (c *Console) withdraw() {
	if !c.requireSession() {
		return
	}
	c.banner("Withdraw")

	amount, ok := c.readAmount()
	if !ok {
		return
	}
	if _, err := c.accounts.Withdraw(c.accountNo, amount); err != nil {
		c.respondWithError("Could not withdraw from account.", err)
		return
	}
	fmt.Fprintln(c.out, "Money successfully withdrawn from account.")
}

func (c *Console) statement() {
	if !c.requireSession() {
		return
	}
	c.banner("Account Statement")

	txs := c.transactions.GetTransactions(c.accountNo)
	if len(txs) == 0 {
		fmt.Fprintln(c.out, "No transaction exists for you.")
		return
	}
	for _, tx := range txs {
		fmt.Fprintln(c.out, tx)
	}
}

func (c *Console) logout() {
	if !c.requireSession() {
		return
	}
	c.logger.Debug("session ended", zap.Int("account_no", c.accountNo))
	c.loggedIn = false
	c.accountNo = 0
	fmt.Fprintln(c.out, "Logged out successfully")
}

// --- Helpers ---

func (c *Console) startSession(accountNo int) {
	c.loggedIn = true
	c.accountNo = accountNo
	c.logger.Debug("session started", zap.Int("account_no", accountNo))
	fmt.Fprintln(c.out, "You are logged in.")
}

func (c *Console) requireSession() bool {
	if !c.loggedIn {
		fmt.Fprintln(c.out, "You are not logged in.")
		return false
	}
	return true
}

func (c *Console) readCredentials() (int, string, bool) {
	line, ok := c.prompt("Account No.: ")
	if !ok {
		return 0, "", false
	}
	accountNo, err := parseAccountNo(line)
	if err != nil {
		c.respondWithError("", err)
		return 0, "", false
	}

	line, ok = c.prompt("Password: ")
	if !ok {
		return 0, "", false
	}
	password, err := validatePassword(line)
	if err != nil {
		c.respondWithError("", err)
		return 0, "", false
	}
	return accountNo, password, true
}

func (c *Console) readAmount() (int64, bool) {
	line, ok := c.prompt("Amount: ")
	if !ok {
		return 0, false
	}
	amount, err := parseAmount(line)
	if err != nil {
		c.respondWithError("", err)
		return 0, false
	}
	return amount, true
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	line, err := c.readLine()
	switch {
	case err == nil:
		return line, true
	case errors.Is(err, account.ErrInvalidInput):
		c.respondWithError("", err)
	default:
		c.err = err
		fmt.Fprintln(c.out)
	}
	return "", false
}

func (c *Console) readLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, err := c.in.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLineLength {
				tooLong, line = true, nil
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		// A final line without a terminator still counts; io.EOF comes on the next read.
		if err != nil && !(errors.Is(err, io.EOF) && (tooLong || len(line) > 0)) {
			return "", err
		}
		break
	}
	if tooLong {
		return "", newInputError(fmt.Sprintf("Input should not exceed %d characters.", maxLineLength))
	}
	return strings.TrimRight(string(line), "\r\n"), nil
}

func (c *Console) banner(title string) {
	const width = 21
	pad := width - len(title)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	fmt.Fprintln(c.out, strings.Repeat("*", width))
	fmt.Fprintln(c.out, strings.Repeat("*", left)+title+strings.Repeat("*", pad-left))
	fmt.Fprintln(c.out, strings.Repeat("*", width))
}
