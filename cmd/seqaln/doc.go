// 19 Oct 2026

/*
Seqaln reads, checks, converts and takes columns from multiple sequence
alignments in phylip or fasta format.

Phylip files are the relaxed kind. The first line has the number of
species and the number of sites. Each following line has a name, up to
100 characters, then the sequence, which may be broken by spaces.
Fasta files have a line starting with ">" and the name, then any number
of sequence lines.

Every file is checked. Names must be unique, every sequence must have the
same length and, for phylip, the numbers on the first line must agree with
what follows.

Usage:

	seqaln [flags] command [args]

The commands are:

	check [infile]
		read and check an alignment, print the number of species and sites
	convert [--from fmt] [--to fmt] [infile [outfile]]
		change format
	subset -c sites [infile [outfile]]
		keep only some sites. Sites count from 1, like "1-100\3, 120"
	squash reference [infile [outfile]]
		remove columns which are gaps in the reference sequence
	rand [-s seed] [-g] [-e] outfile nseq length
		write a random alignment, for testing

The global flags are:

	-f format
		phylip (default) or fasta
	-v
		say which files are read and written
	--config file
		yaml file with settings. Default $HOME/.seqaln.yaml

Settings can also come from the environment, SEQALN_FORMAT and
SEQALN_VERBOSE. Flags win over the environment, which wins over the
config file.

If no input file is given, or it is "-", standard input is read.
If no output file is given, or it is "-", standard output is used.
Compressed (gzip) input files are recognised.
*/
package main
