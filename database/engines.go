// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package database

// MySQL returns the MySQL descriptor.
func MySQL() *Database {
	return &Database{
		ShortName:           "mysql",
		ProductName:         "MySQL",
		DriverName:          "mysql",
		AutoIncrement:       true,
		AlterConstraints:    true,
		RenameColumn:        true,
		DropColumn:          true,
		RenameView:          true,
		Qualify:             QualifyCatalog,
		AutoIncrementClause: "AUTO_INCREMENT",
		TrueLiteral:         "1",
		FalseLiteral:        "0",
		Types: map[string]string{
			"int":      "INT",
			"integer":  "INT",
			"bigint":   "BIGINT",
			"boolean":  "BIT(1)",
			"bool":     "BIT(1)",
			"varchar":  "VARCHAR",
			"text":     "TEXT",
			"clob":     "LONGTEXT",
			"blob":     "LONGBLOB",
			"datetime": "datetime",
			"double":   "DOUBLE",
			"uuid":     "CHAR(36)",
		},
	}
}

// MSSQL returns the Microsoft SQL Server descriptor.
func MSSQL() *Database {
	return &Database{
		ShortName:           "mssql",
		ProductName:         "Microsoft SQL Server",
		Sequences:           true,
		AutoIncrement:       true,
		AlterConstraints:    true,
		RenameColumn:        true,
		DropColumn:          true,
		RenameView:          true,
		QuoteOpen:           "[",
		QuoteClose:          "]",
		Qualify:             QualifyCatalogSchema,
		AutoIncrementClause: "IDENTITY (1, 1)",
		TrueLiteral:         "1",
		FalseLiteral:        "0",
		Types: map[string]string{
			"int":       "int",
			"integer":   "int",
			"bigint":    "bigint",
			"boolean":   "bit",
			"bool":      "bit",
			"varchar":   "varchar",
			"nvarchar":  "nvarchar",
			"text":      "varchar(MAX)",
			"clob":      "varchar(MAX)",
			"blob":      "varbinary(MAX)",
			"datetime":  "datetime",
			"timestamp": "datetime2",
			"double":    "float",
			"uuid":      "uniqueidentifier",
		},
	}
}

// Oracle returns the Oracle descriptor.
func Oracle() *Database {
	return &Database{
		ShortName:        "oracle",
		ProductName:      "Oracle",
		Sequences:        true,
		AlterConstraints: true,
		RenameColumn:     true,
		DropColumn:       true,
		RenameView:       true,
		Deferrable:       true,
		Qualify:          QualifySchema,
		TrueLiteral:      "1",
		FalseLiteral:     "0",
		Types: map[string]string{
			"int":      "INTEGER",
			"integer":  "INTEGER",
			"bigint":   "NUMBER(38, 0)",
			"boolean":  "NUMBER(1)",
			"bool":     "NUMBER(1)",
			"varchar":  "VARCHAR2",
			"nvarchar": "NVARCHAR2",
			"text":     "CLOB",
			"clob":     "CLOB",
			"blob":     "BLOB",
			"datetime": "TIMESTAMP",
			"double":   "FLOAT(24)",
			"uuid":     "RAW(16)",
		},
	}
}

// HSQL returns the HyperSQL descriptor.
func HSQL() *Database {
	return &Database{
		ShortName:           "hsqldb",
		ProductName:         "HyperSQL",
		Sequences:           true,
		AutoIncrement:       true,
		AlterConstraints:    true,
		RenameColumn:        true,
		DropColumn:          true,
		Qualify:             QualifySchema,
		AutoIncrementClause: "GENERATED BY DEFAULT AS IDENTITY",
		Types: map[string]string{
			"int":      "INT",
			"integer":  "INT",
			"boolean":  "BOOLEAN",
			"bool":     "BOOLEAN",
			"text":     "CLOB",
			"datetime": "TIMESTAMP",
			"uuid":     "UUID",
		},
	}
}

// Postgres returns the PostgreSQL descriptor.
func Postgres() *Database {
	return &Database{
		ShortName:           "postgresql",
		ProductName:         "PostgreSQL",
		DriverName:          "postgres",
		Sequences:           true,
		AutoIncrement:       true,
		AlterConstraints:    true,
		RenameColumn:        true,
		DropColumn:          true,
		RenameView:          true,
		Deferrable:          true,
		Qualify:             QualifySchema,
		AutoIncrementClause: "GENERATED BY DEFAULT AS IDENTITY",
		Types: map[string]string{
			"int":      "INTEGER",
			"integer":  "INTEGER",
			"tinyint":  "SMALLINT",
			"boolean":  "BOOLEAN",
			"bool":     "BOOLEAN",
			"clob":     "TEXT",
			"blob":     "BYTEA",
			"datetime": "TIMESTAMP WITHOUT TIME ZONE",
			"double":   "DOUBLE PRECISION",
			"uuid":     "UUID",
		},
	}
}

// SQLite returns the SQLite descriptor.
func SQLite() *Database {
	return &Database{
		ShortName:   "sqlite",
		ProductName: "SQLite",
		DriverName:  "sqlite3",
		Qualify:     QualifyNone,
		Types: map[string]string{
			"int":      "INTEGER",
			"integer":  "INTEGER",
			"bigint":   "BIGINT",
			"boolean":  "BOOLEAN",
			"bool":     "BOOLEAN",
			"datetime": "TEXT",
			"uuid":     "TEXT",
		},
	}
}

// H2 returns the H2 descriptor.
func H2() *Database {
	return &Database{
		ShortName:           "h2",
		ProductName:         "H2",
		Sequences:           true,
		AutoIncrement:       true,
		AlterConstraints:    true,
		RenameColumn:        true,
		DropColumn:          true,
		Qualify:             QualifySchema,
		AutoIncrementClause: "AUTO_INCREMENT",
		Types: map[string]string{
			"int":      "INT",
			"integer":  "INT",
			"boolean":  "BOOLEAN",
			"bool":     "BOOLEAN",
			"datetime": "TIMESTAMP",
		},
	}
}

// DB2 returns the IBM DB2 descriptor.
func DB2() *Database {
	return &Database{
		ShortName:           "db2",
		ProductName:         "DB2",
		Sequences:           true,
		AutoIncrement:       true,
		AlterConstraints:    true,
		RenameColumn:        true,
		DropColumn:          true,
		Qualify:             QualifySchema,
		AutoIncrementClause: "GENERATED BY DEFAULT AS IDENTITY",
		TrueLiteral:         "1",
		FalseLiteral:        "0",
		Types: map[string]string{
			"int":      "INTEGER",
			"integer":  "INTEGER",
			"boolean":  "SMALLINT",
			"bool":     "SMALLINT",
			"text":     "CLOB",
			"datetime": "TIMESTAMP",
		},
	}
}

// Derby returns the Apache Derby descriptor.
func Derby() *Database {
	return &Database{
		ShortName:           "derby",
		ProductName:         "Apache Derby",
		Sequences:           true,
		AutoIncrement:       true,
		AlterConstraints:    true,
		RenameColumn:        true,
		DropColumn:          true,
		Qualify:             QualifySchema,
		AutoIncrementClause: "GENERATED BY DEFAULT AS IDENTITY",
		TrueLiteral:         "1",
		FalseLiteral:        "0",
		Types: map[string]string{
			"int":      "INTEGER",
			"integer":  "INTEGER",
			"boolean":  "SMALLINT",
			"bool":     "SMALLINT",
			"text":     "CLOB",
			"datetime": "TIMESTAMP",
		},
	}
}

// Firebird returns the Firebird descriptor.
func Firebird() *Database {
	return &Database{
		ShortName:        "firebird",
		ProductName:      "Firebird",
		Sequences:        true,
		AlterConstraints: true,
		RenameColumn:     true,
		DropColumn:       true,
		Qualify:          QualifyNone,
		TrueLiteral:      "1",
		FalseLiteral:     "0",
		Types: map[string]string{
			"int":      "INTEGER",
			"integer":  "INTEGER",
			"boolean":  "SMALLINT",
			"bool":     "SMALLINT",
			"text":     "BLOB SUB_TYPE TEXT",
			"datetime": "TIMESTAMP",
		},
	}
}

// Sybase returns the Sybase ASE descriptor.
func Sybase() *Database {
	return &Database{
		ShortName:           "sybase",
		ProductName:         "Sybase",
		AlterConstraints:    true,
		RenameColumn:        true,
		DropColumn:          true,
		RenameView:          true,
		Qualify:             QualifyCatalogSchema,
		QuoteOpen:           "[",
		QuoteClose:          "]",
		AutoIncrementClause: "IDENTITY",
		TrueLiteral:         "1",
		FalseLiteral:        "0",
		Types: map[string]string{
			"int":      "INT",
			"integer":  "INT",
			"boolean":  "BIT",
			"bool":     "BIT",
			"datetime": "datetime",
		},
	}
}

// Informix returns the Informix descriptor.
func Informix() *Database {
	return &Database{
		ShortName:        "informix",
		ProductName:      "Informix",
		Sequences:        true,
		AlterConstraints: true,
		RenameColumn:     true,
		DropColumn:       true,
		Qualify:          QualifySchema,
		TrueLiteral:      "'t'",
		FalseLiteral:     "'f'",
		Types: map[string]string{
			"int":      "INTEGER",
			"integer":  "INTEGER",
			"boolean":  "BOOLEAN",
			"bool":     "BOOLEAN",
			"datetime": "DATETIME YEAR TO FRACTION(5)",
		},
	}
}

// Unsupported returns the catch-all placeholder engine.
func Unsupported() *Database {
	return &Database{
		ShortName:   UnsupportedShortName,
		ProductName: "Unsupported",
		Placeholder: true,
	}
}
