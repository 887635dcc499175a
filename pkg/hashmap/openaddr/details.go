package openaddr

/*
	This hash table implementation uses a closed hashing (open addressing) technique with
	double hashing for resolving any hash collisions, and lazy deletion (tombstones) for
	removing entries without breaking the probe sequences of the keys stored after them.
	More information about these techniques can be found in the links provided below:
	01) https://en.wikipedia.org/wiki/Double_hashing
	02) https://en.wikipedia.org/wiki/Lazy_deletion
	03) https://www.cs.cmu.edu/~ckingsf/bioinfo-lectures/hashing.pdf
	04) https://opendatastructures.org/ods-java/5_2_LinearHashTable_Linear_.html
	The basic principal is:
	-----------------------
	1) Calculate the primary hash of the key, this is the initial index
	2) Calculate the secondary hash of the key, this is the step size. The step is
	   always coprime with the table size, so the probe visits every slot once
	3) Search the positions start, start+step, start+2*step ... (mod size)
	4) A lookup stops at the matching key or at an empty slot. A tombstone does
	   not stop a lookup, it only marks a slot an insert may reuse
	5) An insert reuses the first tombstone it passed, unless the key itself is
	   found further along the sequence, in which case it is updated in place
	6) When the table is more than two thirds full after an insert it is rebuilt
	   into the next size of a fixed, ascending sequence. Tombstones are dropped
	   during the rebuild. Once the sequence is exhausted the table never grows again
*/
