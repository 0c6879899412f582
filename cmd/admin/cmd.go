package main

import (
	"flag"
	"fmt"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"

	"student-control/internal/models"
	"student-control/internal/service"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	users      service.UserService
	promotions service.PromotionService
	reports    service.ReportService
	backups    service.BackupService
	log        *zap.Logger
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  createuser -username USERNAME                      - create a login, the password is prompted next")
	fmt.Println("  resetpassword -username USERNAME                   - reset a user's password")
	fmt.Println("  promote -id ID -course COURSE -days DAYS           - turn a trial student into a paid one")
	fmt.Println("  report -type diario|mensal|financeiro -format txt|pdf|xlsx [-date YYYY-MM-DD]")
	fmt.Println("  backup                                             - snapshot the database")
	fmt.Println("  backups                                            - list snapshots")
	fmt.Println("  restore -name NAME                                 - overwrite the database with a snapshot")
	fmt.Println("  deletebackup -name NAME                            - remove a snapshot")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	createUserCmd := flag.NewFlagSet("createuser", flag.ContinueOnError)
	createUserName := createUserCmd.String("username", "", "The login name. The password will be prompted next.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ContinueOnError)
	resetPasswordName := resetPasswordCmd.String("username", "", "The login name. The password will be prompted next.")

	promoteCmd := flag.NewFlagSet("promote", flag.ContinueOnError)
	promoteID := promoteCmd.Int64("id", 0, "The trial student's id.")
	promoteCourse := promoteCmd.String("course", "", "The paid course.")
	promoteDays := promoteCmd.String("days", "", "The class days, e.g. \"Seg/Qua\".")

	reportCmd := flag.NewFlagSet("report", flag.ContinueOnError)
	reportType := reportCmd.String("type", string(models.ReportDaily), "diario, mensal or financeiro.")
	reportFormat := reportCmd.String("format", string(models.FormatText), "txt, pdf or xlsx.")
	reportDate := reportCmd.String("date", "", "The reference day, today when empty.")

	restoreCmd := flag.NewFlagSet("restore", flag.ContinueOnError)
	restoreName := restoreCmd.String("name", "", "The snapshot file name.")

	deleteBackupCmd := flag.NewFlagSet("deletebackup", flag.ContinueOnError)
	deleteBackupName := deleteBackupCmd.String("name", "", "The snapshot file name.")

	switch args[1] {
	case "createuser":
		if err := createUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *createUserName == "" {
			createUserCmd.Usage()
			return errHelp
		}
		pwd, err := promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			createUserCmd.Usage()
			return errHelp
		}
		return cli.createUser(*createUserName, pwd)

	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordName == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.users.ResetPassword(*resetPasswordName, pwd)

	case "promote":
		if err := promoteCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *promoteID == 0 {
			promoteCmd.Usage()
			return errHelp
		}
		return cli.promote(*promoteID, *promoteCourse, *promoteDays)

	case "report":
		if err := reportCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.report(*reportType, *reportFormat, *reportDate)

	case "backup":
		b, err := cli.backups.Create()
		if err != nil {
			return err
		}
		fmt.Println(b.Path)
		return nil

	case "backups":
		return cli.listBackups()

	case "restore":
		if err := restoreCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *restoreName == "" {
			restoreCmd.Usage()
			return errHelp
		}
		return cli.backups.Restore(*restoreName)

	case "deletebackup":
		if err := deleteBackupCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *deleteBackupName == "" {
			deleteBackupCmd.Usage()
			return errHelp
		}
		return cli.backups.Delete(*deleteBackupName)

	default:
		cli.printUsage()
		return errHelp
	}
}

func promptPassword() (string, error) {
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

func (cli *commandLine) createUser(username, pwd string) error {
	created, err := cli.users.Register(username, pwd)
	if err != nil {
		return err
	}
	if !created {
		return errors.Errorf("user %q already exists", username)
	}
	cli.log.Info("👤 user created", zap.String("username", username))
	return nil
}

func (cli *commandLine) promote(id int64, course, days string) error {
	student, err := cli.promotions.Promote(id, course, days)
	if err != nil && student == nil {
		return err
	}
	fmt.Printf("student %d: %s (%s)\n", student.ID, student.Name, student.Course)
	return err
}

func (cli *commandLine) report(kind, format, date string) error {
	day := time.Now()
	if date != "" {
		parsed, err := time.ParseInLocation(models.DateLayout, date, time.Local)
		if err != nil {
			return errors.Wrapf(err, "invalid date %q", date)
		}
		day = parsed
	}

	path, err := cli.reports.Generate(models.ReportKind(kind), models.ReportFormat(format), day)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func (cli *commandLine) listBackups() error {
	backups, err := cli.backups.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("no backups")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s\t%s\t%d bytes\n", b.Name, b.CreatedAt.Format("2006-01-02 15:04:05"), b.Size)
	}
	return nil
}
