package main

import (
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"

	"github.com/alternun/gbt-minting-go/api"
	"github.com/alternun/gbt-minting-go/config"
	"github.com/alternun/gbt-minting-go/facade"
	"github.com/alternun/gbt-minting-go/storage"
	"github.com/alternun/gbt-minting-go/storage/leveldb"
	"github.com/alternun/gbt-minting-go/storage/lrucache"
	"github.com/alternun/gbt-minting-go/storage/memorydb"
	"github.com/alternun/gbt-minting-go/storage/storageunit"
	"github.com/alternun/gbt-minting-go/vm/systemSmartContracts"
)

var log = logger.GetOrCreate("main")

var (
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "The main configuration file",
		Value: "./config/config.toml",
	}
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level patterns, overrides the configuration file when set",
		Value: "",
	}
	restApiInterface = cli.StringFlag{
		Name:  "rest-api-interface",
		Usage: "The interface address:port the REST API listens on, overrides the configuration file when set",
		Value: "",
	}
	useMemoryDB = cli.BoolFlag{
		Name:  "use-memory-db",
		Usage: "Keep all state in memory instead of the LevelDB persister",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "GBT minter node"
	app.Usage = "Runs the capacity-bounded GBT minting engine with its REST interface"
	app.Flags = []cli.Flag{configFile, logLevel, restApiInterface, useMemoryDB}
	app.Action = func(c *cli.Context) error {
		return startMinter(c)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error("cannot start minter node", "error", err)
		os.Exit(1)
	}
}

func startMinter(ctx *cli.Context) error {
	cfg := config.Config{}
	err := core.LoadTomlFile(&cfg, ctx.GlobalString(configFile.Name))
	if err != nil {
		return err
	}

	level := cfg.General.LogLevel
	if ctx.GlobalString(logLevel.Name) != "" {
		level = ctx.GlobalString(logLevel.Name)
	}
	err = logger.SetLogLevel(level)
	if err != nil {
		return err
	}

	storer, err := createStorer(cfg, ctx.GlobalBool(useMemoryDB.Name))
	if err != nil {
		return err
	}
	defer func() {
		errClose := storer.Close()
		if errClose != nil {
			log.Warn("cannot close storer", "error", errClose)
		}
	}()

	minterFacade, err := createFacade(storer)
	if err != nil {
		return err
	}
	err = applyGenesis(minterFacade, cfg.Genesis)
	if err != nil {
		return err
	}

	apiAddress := cfg.API.Address
	if ctx.GlobalString(restApiInterface.Name) != "" {
		apiAddress = ctx.GlobalString(restApiInterface.Name)
	}
	if !cfg.API.Enabled && ctx.GlobalString(restApiInterface.Name) == "" {
		log.Info("REST interface disabled, nothing left to serve")
		return nil
	}

	webServer, err := api.NewWebServer(minterFacade, apiAddress)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- webServer.StartHttpServer()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err = <-serverErr:
		return err
	case sig := <-sigs:
		log.Info("terminating at user's signal", "signal", sig.String())
	}

	return webServer.Close()
}

func createStorer(cfg config.Config, forceMemory bool) (storage.Storer, error) {
	cache, err := lrucache.NewCache(cfg.DB.CacheSize)
	if err != nil {
		return nil, err
	}

	var persister storage.Persister
	if forceMemory || cfg.DB.UseMemory {
		persister = memorydb.New()
	} else {
		persister, err = leveldb.NewDB(cfg.DB.FilePath)
		if err != nil {
			return nil, err
		}
	}

	return storageunit.NewStorageUnit(cache, persister)
}

type minterFacadeHandler interface {
	api.FacadeHandler
	InitMinting(caller []byte, args [][]byte) error
	InitOracle(caller []byte, args [][]byte) error
	InitTreasury(caller []byte, args [][]byte) error
	InitGBTLedger(caller []byte, args [][]byte) error
	InitStableLedger(caller []byte, args [][]byte) error
}

func createFacade(storer storage.Storer) (minterFacadeHandler, error) {
	eei, err := systemSmartContracts.NewVMContext(storer)
	if err != nil {
		return nil, err
	}

	marshalizer := &marshal.JsonMarshalizer{}

	gbtLedger, err := systemSmartContracts.NewTokenLedgerContract(systemSmartContracts.ArgsNewTokenLedger{
		Eei:         eei,
		Marshalizer: marshalizer,
		Identifier:  []byte("gbt"),
	})
	if err != nil {
		return nil, err
	}
	stableLedger, err := systemSmartContracts.NewTokenLedgerContract(systemSmartContracts.ArgsNewTokenLedger{
		Eei:         eei,
		Marshalizer: marshalizer,
		Identifier:  []byte("stable"),
	})
	if err != nil {
		return nil, err
	}
	oracle, err := systemSmartContracts.NewPriceOracleContract(systemSmartContracts.ArgsNewPriceOracle{
		Eei:         eei,
		Marshalizer: marshalizer,
	})
	if err != nil {
		return nil, err
	}
	treasury, err := systemSmartContracts.NewTreasuryContract(systemSmartContracts.ArgsNewTreasury{
		Eei:          eei,
		Marshalizer:  marshalizer,
		StableLedger: stableLedger,
	})
	if err != nil {
		return nil, err
	}
	minting, err := systemSmartContracts.NewGBTMintingContract(systemSmartContracts.ArgsNewGBTMinting{
		Eei:          eei,
		Marshalizer:  marshalizer,
		Oracle:       oracle,
		StableLedger: stableLedger,
		GBTMinter:    gbtLedger,
		Treasury:     treasury,
	})
	if err != nil {
		return nil, err
	}

	return facade.NewMinterFacade(facade.ArgsNewMinterFacade{
		Eei:          eei,
		Minting:      minting,
		Oracle:       oracle,
		Treasury:     treasury,
		GBTLedger:    gbtLedger,
		StableLedger: stableLedger,
	})
}

// applyGenesis runs the one-time initialization of every contract. All init operations
// are idempotent so re-running them on restart over a persisted db is harmless.
func applyGenesis(mf minterFacadeHandler, genesis config.GenesisConfig) error {
	admin := []byte(genesis.AdminAddress)
	decimals := big.NewInt(int64(genesis.TokenDecimals)).Bytes()

	err := mf.InitGBTLedger(admin, [][]byte{
		admin, []byte(genesis.GBTTokenName), []byte(genesis.GBTTickerName), decimals,
	})
	if err != nil {
		return err
	}
	err = mf.InitStableLedger(admin, [][]byte{
		admin, []byte(genesis.StableTokenName), []byte(genesis.StableTickerName), decimals,
	})
	if err != nil {
		return err
	}
	err = mf.InitOracle(admin, [][]byte{admin})
	if err != nil {
		return err
	}
	err = mf.InitTreasury(admin, [][]byte{
		admin,
		[]byte(genesis.ProjectsAddress),
		[]byte(genesis.RecoveryAddress),
		[]byte(genesis.AlternunAddress),
	})
	if err != nil {
		return err
	}
	err = mf.InitMinting(admin, [][]byte{
		admin,
		[]byte(genesis.GBTTickerName),
		[]byte(genesis.StableTickerName),
		[]byte("treasury"),
		[]byte("oracle"),
		big.NewInt(int64(genesis.FeeBps)).Bytes(),
		big.NewInt(int64(genesis.CommercialFactorBps)).Bytes(),
	})
	if err != nil {
		return err
	}

	return applyGenesisPrice(mf, admin, genesis.InitialPrice)
}

func applyGenesisPrice(mf minterFacadeHandler, admin []byte, rawPrice string) error {
	if rawPrice == "" {
		return nil
	}
	price, ok := big.NewInt(0).SetString(rawPrice, 10)
	if !ok {
		return errInvalidGenesisPrice
	}

	current, err := mf.GetPrice()
	if err != nil {
		return err
	}
	if current.Sign() > 0 {
		return nil
	}

	return mf.SetPrice(admin, price)
}
