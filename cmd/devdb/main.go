package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/muscleflow/muscleflow/internal/utils"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mysqlImage   = "mysql:8.4"
	mysqlPort    = "3306/tcp"
	rootPassword = "devdb-root"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run a disposable MySQL container and print the env lines to point the server at it.

Usage:

devdb [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: optional .env file to load before starting

example
  devdb -f /path/to/something/.env
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	}

	ctx := context.Background()
	dbName := "muscleflow_" + uuid.NewString()[:8]

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mysqlImage,
			ExposedPorts: []string{mysqlPort},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": rootPassword,
				"MYSQL_DATABASE":      dbName,
			},
			WaitingFor: wait.ForListeningPort(mysqlPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		log.Fatalf("Failed to start MySQL container: %v\n", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		terminate(ctx, container)
		log.Fatalf("Failed to resolve container host: %v\n", err)
	}
	port, err := container.MappedPort(ctx, mysqlPort)
	if err != nil {
		terminate(ctx, container)
		log.Fatalf("Failed to resolve mapped port: %v\n", err)
	}

	if err := utils.PingService(fmt.Sprintf("tcp://%s:%s", host, port.Port()), 5*time.Second); err != nil {
		terminate(ctx, container)
		log.Fatalf("MySQL port unreachable: %v\n", err)
	}
	if err := waitForMySQL(host, port.Port(), dbName); err != nil {
		terminate(ctx, container)
		log.Fatalf("MySQL never became ready: %v\n", err)
	}

	fmt.Println("# MySQL is up, point the server at it with:")
	fmt.Println("DB_TYPE=mysql")
	fmt.Printf("DB_HOST=%s\n", host)
	fmt.Printf("DB_PORT=%s\n", port.Port())
	fmt.Printf("DB_DATABASE=%s\n", dbName)
	fmt.Println("DB_USER=root")
	fmt.Printf("DB_PASSWORD=%s\n", rootPassword)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	log.Printf("Received signal: %v, terminating container...\n", sig)
	terminate(ctx, container)
}

// waitForMySQL pings until the server accepts connections. The listening port
// opens before MySQL finishes initializing, so a TCP wait alone is not enough.
func waitForMySQL(host, port, dbName string) error {
	dsn := fmt.Sprintf("root:%s@tcp(%s:%s)/%s", rootPassword, host, port, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	deadline := time.Now().Add(60 * time.Second)
	for {
		err = db.Ping()
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(time.Second)
	}
}

func terminate(ctx context.Context, container testcontainers.Container) {
	if err := container.Terminate(ctx); err != nil {
		log.Printf("Failed to terminate container: %v\n", err)
	}
}
